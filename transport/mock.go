package transport

import "fmt"

// mockCall records one SendCommand invocation, for assertions in tests
// that care whether the transport was touched at all (e.g. an engine
// guard that must reject a request before any wire traffic occurs).
type mockCall struct {
	Opcode   uint16
	Params   []uint32
	SendData []byte
}

// mockReply is a canned response keyed by opcode.
type mockReply struct {
	ResultCode uint32
	RecvData   []byte
	Err        error
}

// Mock is a scriptable in-memory ptp.Transport for tests. Replies are
// registered per opcode; a command with no registered reply returns a
// transport error so a forgotten stub fails loudly rather than
// panicking or blocking.
type Mock struct {
	replies map[uint16]mockReply
	Calls   []mockCall
}

// NewMock returns an empty Mock ready for replies to be registered.
func NewMock() *Mock {
	return &Mock{replies: make(map[uint16]mockReply)}
}

// OnOpcode registers the reply returned the next time (and every
// subsequent time) opcode is sent.
func (m *Mock) OnOpcode(opcode uint16, resultCode uint32, recvData []byte) *Mock {
	m.replies[opcode] = mockReply{ResultCode: resultCode, RecvData: recvData}
	return m
}

// OnOpcodeError registers a transport-level failure for opcode.
func (m *Mock) OnOpcodeError(opcode uint16, err error) *Mock {
	m.replies[opcode] = mockReply{Err: err}
	return m
}

// SendCommand implements ptp.Transport.
func (m *Mock) SendCommand(opcode uint16, params []uint32, sendData []byte, recvCapacity uint32) (uint32, []byte, error) {
	m.Calls = append(m.Calls, mockCall{Opcode: opcode, Params: append([]uint32(nil), params...), SendData: append([]byte(nil), sendData...)})

	r, ok := m.replies[opcode]
	if !ok {
		return 0, nil, fmt.Errorf("transport/mock: no reply registered for opcode 0x%04x", opcode)
	}
	if r.Err != nil {
		return 0, nil, r.Err
	}

	data := r.RecvData
	if recvCapacity > 0 && uint32(len(data)) > recvCapacity {
		data = data[:recvCapacity]
	}
	return r.ResultCode, data, nil
}
