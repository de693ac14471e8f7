// Package transport provides concrete ptp.Transport adapters: PTP/IP
// over TCP, PTP over a serial link, and an in-memory mock for tests.
package transport

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/malc0mn/ptpcore/ptp"
)

// Container packet types, per the PTP/IP standard's header framing:
// a 4-byte little-endian length (including the header itself) followed
// by a 4-byte little-endian packet type, then the type-specific
// payload.
const (
	pktInitCommandRequest  uint32 = 1
	pktInitCommandAck      uint32 = 2
	pktInitEventRequest    uint32 = 3
	pktInitEventAck        uint32 = 4
	pktInitFail            uint32 = 5
	pktOperationRequest    uint32 = 6
	pktOperationResponse   uint32 = 7
	pktEvent               uint32 = 8
	pktStartDataPacket     uint32 = 9
	pktDataPacket          uint32 = 10
	pktCancelTransaction   uint32 = 11
	pktEndDataPacket       uint32 = 12
	pktProbeRequest        uint32 = 13
	pktProbeResponse       uint32 = 14
)

const headerSize = 8 // length(4) + packetType(4)

// TCP is a ptp.Transport over a PTP/IP command/data connection. One
// TCP instance serializes every SendCommand call onto a single
// net.Conn: callers must not issue overlapping commands. TCP owns the
// transaction ID sequence since it is a wire-level concern.
type TCP struct {
	conn net.Conn
	guid uuid.UUID
	name string

	transactionID uint32
	timeout       time.Duration
}

// DialTCP connects to addr (host:port), performs the PTP/IP
// Init-Command-Request/Ack handshake advertising friendlyName and a
// freshly generated GUID, and returns a ready-to-use TCP transport.
func DialTCP(addr string, friendlyName string, timeout time.Duration) (*TCP, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", addr, err)
	}

	t := &TCP{
		conn:    conn,
		guid:    uuid.New(),
		name:    friendlyName,
		timeout: timeout,
	}

	if err := t.handshake(); err != nil {
		conn.Close()
		return nil, err
	}
	return t, nil
}

func (t *TCP) handshake() error {
	payload := make([]byte, 0, 16+2+len(t.name)*2+2)
	guidBytes, err := t.guid.MarshalBinary()
	if err != nil {
		return fmt.Errorf("transport: marshal GUID: %w", err)
	}
	payload = append(payload, guidBytes...)
	payload = append(payload, encodeFriendlyName(t.name)...)

	if err := t.writePacket(pktInitCommandRequest, payload); err != nil {
		return err
	}

	pktType, body, err := t.readPacket()
	if err != nil {
		return err
	}
	if pktType == pktInitFail {
		return fmt.Errorf("transport: responder rejected init command request")
	}
	if pktType != pktInitCommandAck {
		return fmt.Errorf("transport: unexpected packet type 0x%x during handshake", pktType)
	}
	_ = body

	return nil
}

func encodeFriendlyName(name string) []byte {
	var buf ptp.Buffer
	buf.WriteString(name)
	return buf.Bytes()
}

// SendCommand implements ptp.Transport.
func (t *TCP) SendCommand(opcode uint16, params []uint32, sendData []byte, recvCapacity uint32) (uint32, []byte, error) {
	if len(params) > 5 {
		return 0, nil, fmt.Errorf("transport: at most 5 parameters, got %d", len(params))
	}

	t.transactionID++
	tid := t.transactionID

	dataPhase := uint32(0) // no data
	if sendData != nil {
		dataPhase = 2 // data out
	} else if recvCapacity > 0 {
		dataPhase = 1 // data in
	}

	var req ptp.Buffer
	req.WriteUint32(dataPhase)
	req.WriteUint16(opcode)
	req.WriteUint32(tid)
	for _, p := range params {
		req.WriteUint32(p)
	}

	if err := t.writePacket(pktOperationRequest, req.Bytes()); err != nil {
		return 0, nil, err
	}

	if sendData != nil {
		if err := t.writePacket(pktStartDataPacket, encodeDataLength(len(sendData))); err != nil {
			return 0, nil, err
		}
		if err := t.writePacket(pktDataPacket, sendData); err != nil {
			return 0, nil, err
		}
		if err := t.writePacket(pktEndDataPacket, nil); err != nil {
			return 0, nil, err
		}
	}

	var recvData []byte
	if recvCapacity > 0 {
		pktType, body, err := t.readPacket()
		if err != nil {
			return 0, nil, err
		}
		if pktType == pktStartDataPacket {
			// The StartData packet's body is the total data length
			// being announced, not payload; it is consumed here and
			// discarded, and only the packets that follow carry bytes.
			for {
				pktType, body, err = t.readPacket()
				if err != nil {
					return 0, nil, err
				}
				if pktType == pktDataPacket {
					recvData = append(recvData, body...)
					continue
				}
				if pktType == pktEndDataPacket {
					recvData = append(recvData, body...)
					break
				}
				break
			}
		} else if pktType == pktDataPacket {
			recvData = append(recvData, body...)
		}
		if uint32(len(recvData)) > recvCapacity {
			recvData = recvData[:recvCapacity]
		}
	}

	pktType, body, err := t.readPacket()
	if err != nil {
		return 0, nil, err
	}
	if pktType != pktOperationResponse {
		return 0, nil, fmt.Errorf("transport: expected operation response, got packet type 0x%x", pktType)
	}

	c := ptp.NewCursor(body)
	resultCode, err := c.ReadUint16()
	if err != nil {
		return 0, nil, fmt.Errorf("transport: truncated operation response: %w", err)
	}

	return uint32(resultCode), recvData, nil
}

func encodeDataLength(n int) []byte {
	var buf ptp.Buffer
	buf.WriteUint32(uint32(n))
	return buf.Bytes()
}

func (t *TCP) writePacket(pktType uint32, payload []byte) error {
	if t.timeout > 0 {
		t.conn.SetWriteDeadline(time.Now().Add(t.timeout))
	}

	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(header[0:4], uint32(headerSize+len(payload)))
	binary.LittleEndian.PutUint32(header[4:8], pktType)

	if _, err := t.conn.Write(header); err != nil {
		return fmt.Errorf("transport: write header: %w", err)
	}
	if len(payload) > 0 {
		if _, err := t.conn.Write(payload); err != nil {
			return fmt.Errorf("transport: write payload: %w", err)
		}
	}
	return nil
}

func (t *TCP) readPacket() (uint32, []byte, error) {
	if t.timeout > 0 {
		t.conn.SetReadDeadline(time.Now().Add(t.timeout))
	}

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(t.conn, header); err != nil {
		return 0, nil, fmt.Errorf("transport: read header: %w", err)
	}
	length := binary.LittleEndian.Uint32(header[0:4])
	pktType := binary.LittleEndian.Uint32(header[4:8])

	if length < headerSize {
		return 0, nil, fmt.Errorf("transport: packet length %d shorter than header", length)
	}
	bodyLen := length - headerSize
	body := make([]byte, bodyLen)
	if bodyLen > 0 {
		if _, err := io.ReadFull(t.conn, body); err != nil {
			return 0, nil, fmt.Errorf("transport: read body: %w", err)
		}
	}

	return pktType, body, nil
}

// Close tears down the underlying connection. A command in flight is
// not cancellable; closing causes it to fail with an I/O error that
// Engine wraps as TransportError.
func (t *TCP) Close() error {
	return t.conn.Close()
}
