package transport

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/malc0mn/ptpcore/ptp"
	"github.com/tarm/serial"
)

// Serial is a ptp.Transport over a direct PTP-over-serial link (no
// PTP/IP session handshake, no GUID/friendly-name exchange). Each
// command is framed as a 4-byte little-endian length-prefixed block:
// opcode(2) | transactionID(4) | paramCount(1) | params(4 each) |
// dataLen(4) | data, and each reply as resultCode(4) | dataLen(4) |
// data. This is a simplification of the TCP transport's PTP/IP
// container: a serial link carries no concurrent event/data channel to
// multiplex, so one request/reply pair suffices per command.
type Serial struct {
	port          *serial.Port
	transactionID uint32
}

// SerialConfig names the serial device and its settings. OpenSerial
// passes only Name and Baud to tarm/serial; Hardware (RTS/CTS flow
// control) is not applied to the port.
type SerialConfig struct {
	Name     string
	Baud     int
	Hardware bool // RTS/CTS flow control; not applied by OpenSerial
}

// OpenSerial opens the named serial device and returns a ready-to-use
// Serial transport.
func OpenSerial(cfg SerialConfig) (*Serial, error) {
	c := &serial.Config{Name: cfg.Name, Baud: cfg.Baud}
	port, err := serial.OpenPort(c)
	if err != nil {
		return nil, fmt.Errorf("transport: open serial port %s: %w", cfg.Name, err)
	}
	return &Serial{port: port}, nil
}

// SendCommand implements ptp.Transport.
func (s *Serial) SendCommand(opcode uint16, params []uint32, sendData []byte, recvCapacity uint32) (uint32, []byte, error) {
	if len(params) > 5 {
		return 0, nil, fmt.Errorf("transport: at most 5 parameters, got %d", len(params))
	}

	s.transactionID++

	var req ptp.Buffer
	req.WriteUint16(opcode)
	req.WriteUint32(s.transactionID)
	req.WriteUint8(uint8(len(params)))
	for _, p := range params {
		req.WriteUint32(p)
	}
	req.WriteUint32(uint32(len(sendData)))
	body := append(req.Bytes(), sendData...)

	frame := make([]byte, 4+len(body))
	binary.LittleEndian.PutUint32(frame[0:4], uint32(len(body)))
	copy(frame[4:], body)

	if _, err := s.port.Write(frame); err != nil {
		return 0, nil, fmt.Errorf("transport: serial write: %w", err)
	}

	lenBuf := make([]byte, 4)
	if _, err := io.ReadFull(s.port, lenBuf); err != nil {
		return 0, nil, fmt.Errorf("transport: serial read length: %w", err)
	}
	replyLen := binary.LittleEndian.Uint32(lenBuf)

	reply := make([]byte, replyLen)
	if replyLen > 0 {
		if _, err := io.ReadFull(s.port, reply); err != nil {
			return 0, nil, fmt.Errorf("transport: serial read body: %w", err)
		}
	}

	c := ptp.NewCursor(reply)
	resultCode, err := c.ReadUint32()
	if err != nil {
		return 0, nil, fmt.Errorf("transport: truncated serial reply: %w", err)
	}
	dataLen, err := c.ReadUint32()
	if err != nil {
		return 0, nil, fmt.Errorf("transport: truncated serial reply: %w", err)
	}
	if uint32(c.Remaining()) < dataLen {
		return 0, nil, fmt.Errorf("transport: serial reply data shorter than declared length")
	}
	data := reply[len(reply)-c.Remaining() : len(reply)-c.Remaining()+int(dataLen)]
	if uint32(len(data)) > recvCapacity && recvCapacity > 0 {
		data = data[:recvCapacity]
	}

	return resultCode, data, nil
}

// Close releases the underlying serial port.
func (s *Serial) Close() error {
	return s.port.Close()
}
