package transport

import "testing"

func TestMockOnOpcodeReplaysResult(t *testing.T) {
	m := NewMock().OnOpcode(0x1001, 0x2001, []byte{0xAA, 0xBB})

	result, data, err := m.SendCommand(0x1001, []uint32{1, 2}, nil, 0xFFFFFFFF)
	if err != nil {
		t.Fatalf("SendCommand: %v", err)
	}
	if result != 0x2001 {
		t.Errorf("result = 0x%x, want 0x2001", result)
	}
	if len(data) != 2 || data[0] != 0xAA || data[1] != 0xBB {
		t.Errorf("data = %v, want [0xAA 0xBB]", data)
	}
	if len(m.Calls) != 1 {
		t.Fatalf("len(Calls) = %d, want 1", len(m.Calls))
	}
	if m.Calls[0].Opcode != 0x1001 {
		t.Errorf("Calls[0].Opcode = 0x%x, want 0x1001", m.Calls[0].Opcode)
	}
}

func TestMockOnOpcodeErrorSurfacesTransportFailure(t *testing.T) {
	sentinel := errTestSentinel{}
	m := NewMock().OnOpcodeError(0x1002, sentinel)

	_, _, err := m.SendCommand(0x1002, nil, nil, 0)
	if err != sentinel {
		t.Errorf("SendCommand() err = %v, want sentinel", err)
	}
}

func TestMockUnregisteredOpcodeFails(t *testing.T) {
	m := NewMock()
	if _, _, err := m.SendCommand(0x9999, nil, nil, 0); err == nil {
		t.Error("expected error for unregistered opcode")
	}
}

func TestMockTruncatesToRecvCapacity(t *testing.T) {
	m := NewMock().OnOpcode(0x1003, 0, []byte{1, 2, 3, 4, 5})

	_, data, err := m.SendCommand(0x1003, nil, nil, 2)
	if err != nil {
		t.Fatalf("SendCommand: %v", err)
	}
	if len(data) != 2 {
		t.Errorf("len(data) = %d, want 2 (truncated to recvCapacity)", len(data))
	}
}

type errTestSentinel struct{}

func (errTestSentinel) Error() string { return "sentinel error" }
