package transport

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/malc0mn/ptpcore/ptp"
)

// fakeResponder plays a scripted PTP/IP responder on one side of a
// net.Pipe, driven by writePacket/readPacket's own framing so the test
// exercises the exact wire format TCP produces and consumes.
type fakeResponder struct {
	conn net.Conn
}

func (r *fakeResponder) writePacket(t *testing.T, pktType uint32, payload []byte) {
	t.Helper()
	header := make([]byte, headerSize)
	putUint32LE(header[0:4], uint32(headerSize+len(payload)))
	putUint32LE(header[4:8], pktType)
	if _, err := r.conn.Write(header); err != nil {
		t.Fatalf("responder write header: %v", err)
	}
	if len(payload) > 0 {
		if _, err := r.conn.Write(payload); err != nil {
			t.Fatalf("responder write payload: %v", err)
		}
	}
}

func (r *fakeResponder) readPacket(t *testing.T) (uint32, []byte) {
	t.Helper()
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r.conn, header); err != nil {
		t.Fatalf("responder read header: %v", err)
	}
	length := getUint32LE(header[0:4])
	pktType := getUint32LE(header[4:8])
	body := make([]byte, length-headerSize)
	if len(body) > 0 {
		if _, err := io.ReadFull(r.conn, body); err != nil {
			t.Fatalf("responder read body: %v", err)
		}
	}
	return pktType, body
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func getUint32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func dialPipeTCP(t *testing.T) (*TCP, *fakeResponder) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	tr := &TCP{conn: clientConn, timeout: 2 * time.Second}
	return tr, &fakeResponder{conn: serverConn}
}

// TestSendCommandMultiPacketDataPhase exercises a GetDeviceInfo-style
// reply split across a StartData announcement (total length only, no
// payload bytes of its own) followed by one or more Data packets and a
// terminating EndData packet. The StartData body must never be mistaken
// for payload.
func TestSendCommandMultiPacketDataPhase(t *testing.T) {
	tr, responder := dialPipeTCP(t)

	want := []byte("hello device info payload")

	go func() {
		// Operation request.
		responder.readPacket(t)

		var lenBuf ptp.Buffer
		lenBuf.WriteUint32(uint32(len(want)))
		responder.writePacket(t, pktStartDataPacket, lenBuf.Bytes())
		responder.writePacket(t, pktDataPacket, want[:10])
		responder.writePacket(t, pktEndDataPacket, want[10:])

		var rc ptp.Buffer
		rc.WriteUint32(uint32(ptp.RC_OK))
		responder.writePacket(t, pktOperationResponse, rc.Bytes())
	}()

	result, data, err := tr.SendCommand(uint16(ptp.OC_GetDeviceInfo), nil, nil, 0xFFFFFFFF)
	if err != nil {
		t.Fatalf("SendCommand: %v", err)
	}
	if result != uint32(ptp.RC_OK) {
		t.Errorf("result = 0x%x, want RC_OK", result)
	}
	if string(data) != string(want) {
		t.Errorf("recvData = %q, want %q (StartData length must not leak into payload)", data, want)
	}
}

func TestSendCommandSingleDataPacketNoStart(t *testing.T) {
	tr, responder := dialPipeTCP(t)

	want := []byte{0xAA, 0xBB, 0xCC}

	go func() {
		responder.readPacket(t)
		responder.writePacket(t, pktDataPacket, want)

		var rc ptp.Buffer
		rc.WriteUint32(uint32(ptp.RC_OK))
		responder.writePacket(t, pktOperationResponse, rc.Bytes())
	}()

	_, data, err := tr.SendCommand(uint16(ptp.OC_GetDeviceInfo), nil, nil, 0xFFFFFFFF)
	if err != nil {
		t.Fatalf("SendCommand: %v", err)
	}
	if string(data) != string(want) {
		t.Errorf("recvData = %q, want %q", data, want)
	}
}
