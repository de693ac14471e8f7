package ptp

import (
	"errors"
	"testing"
)

// mockTransport is a minimal local stand-in; the real transport/mock
// package lives one level up the module and cannot be imported here
// without an import cycle (transport imports ptp), so the ptp
// package's own engine tests use this small inline double instead.
type mockTransport struct {
	replies map[uint16]struct {
		result uint32
		data   []byte
	}
	calls int
}

func newMockTransport() *mockTransport {
	return &mockTransport{replies: make(map[uint16]struct {
		result uint32
		data   []byte
	})}
}

func (m *mockTransport) on(opcode uint16, result uint32, data []byte) {
	m.replies[opcode] = struct {
		result uint32
		data   []byte
	}{result, data}
}

func (m *mockTransport) SendCommand(opcode uint16, params []uint32, sendData []byte, recvCapacity uint32) (uint32, []byte, error) {
	m.calls++
	r, ok := m.replies[opcode]
	if !ok {
		return 0, nil, errors.New("mockTransport: no reply registered")
	}
	return r.result, r.data, nil
}

func newEngineWithBatteryInfo(form FormCode, rng []PropertyValue, current PropertyValue) *Engine {
	e := NewEngine(newMockTransport(), nil)
	e.info = DeviceInfoModel{
		PropertyMap: map[uint16]PropertyInfo{
			uint16(DPC_BatteryLevel): {
				TypeCode: TC_UINT8,
				Form:     form,
				Range:    rng,
				Current:  current,
			},
		},
	}
	return e
}

func TestBatteryPercentLinear(t *testing.T) {
	e := newEngineWithBatteryInfo(FC_RANGE,
		[]PropertyValue{NewUint8(0), NewUint8(100), NewUint8(1)},
		NewUint8(37))

	got := e.BatteryPercent()
	if got != 37.0 {
		t.Errorf("BatteryPercent() = %v, want 37.0", got)
	}
}

func TestBatteryPercentClamp(t *testing.T) {
	e := newEngineWithBatteryInfo(FC_RANGE,
		[]PropertyValue{NewUint8(0), NewUint8(100), NewUint8(1)},
		NewUint8(250))

	got := e.BatteryPercent()
	if got != 100.0 {
		t.Errorf("BatteryPercent() = %v, want 100.0", got)
	}
}

func TestBatteryPercentUnprobed(t *testing.T) {
	e := NewEngine(newMockTransport(), nil)
	e.info = DeviceInfoModel{PropertyMap: map[uint16]PropertyInfo{
		uint16(DPC_BatteryLevel): {},
	}}
	if got := e.BatteryPercent(); got != -1 {
		t.Errorf("BatteryPercent() on unprobed property = %v, want -1", got)
	}
}

// InitiateCapture must check OperationsSupported before touching the
// transport, so an unsupported camera fails fast without any wire traffic.
func TestInitiateCaptureUnsupported(t *testing.T) {
	tr := newMockTransport()
	e := NewEngine(tr, nil)
	e.info = DeviceInfoModel{
		OperationsSupported: []uint16{}, // 0x100E absent
		PropertyMap:         map[uint16]PropertyInfo{},
	}

	err := e.InitiateCapture()
	if !errors.Is(err, ErrNotSupported) {
		t.Fatalf("InitiateCapture() = %v, want ErrNotSupported", err)
	}
	if tr.calls != 0 {
		t.Errorf("transport was invoked %d times, want 0", tr.calls)
	}
}

func TestInitiateCaptureSupported(t *testing.T) {
	tr := newMockTransport()
	tr.on(uint16(OC_InitiateCapture), uint32(RC_OK), nil)
	e := NewEngine(tr, nil)
	e.info = DeviceInfoModel{
		OperationsSupported: []uint16{uint16(OC_InitiateCapture)},
		PropertyMap:         map[uint16]PropertyInfo{},
	}

	if err := e.InitiateCapture(); err != nil {
		t.Fatalf("InitiateCapture() = %v, want nil", err)
	}
	if tr.calls != 1 {
		t.Errorf("transport was invoked %d times, want 1", tr.calls)
	}
}

// SetValue must validate the new value's tag against the cached
// PropertyInfo before sending SetDevicePropValue, so a mismatched type
// never reaches the wire.
func TestSetValueTypeMismatch(t *testing.T) {
	tr := newMockTransport()
	e := NewEngine(tr, nil)
	e.info = DeviceInfoModel{
		PropertyMap: map[uint16]PropertyInfo{
			uint16(DPC_WhiteBalance): {TypeCode: TC_UINT16, GetSet: GetAndSet},
		},
	}

	err := e.SetValue(uint16(DPC_WhiteBalance), NewUint8(2))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("SetValue() = %v, want ErrTypeMismatch", err)
	}
	if tr.calls != 0 {
		t.Errorf("transport was invoked %d times, want 0", tr.calls)
	}
}

func TestSetValueNotSettable(t *testing.T) {
	tr := newMockTransport()
	e := NewEngine(tr, nil)
	e.info = DeviceInfoModel{
		PropertyMap: map[uint16]PropertyInfo{
			uint16(DPC_WhiteBalance): {TypeCode: TC_UINT16, GetSet: GetOnly},
		},
	}

	err := e.SetValue(uint16(DPC_WhiteBalance), NewUint16(2))
	if !errors.Is(err, ErrNotSettable) {
		t.Fatalf("SetValue() = %v, want ErrNotSettable", err)
	}
	if tr.calls != 0 {
		t.Errorf("transport was invoked %d times, want 0", tr.calls)
	}
}

func TestSetValueSuccess(t *testing.T) {
	tr := newMockTransport()
	tr.on(uint16(OC_SetDevicePropValue), uint32(RC_OK), nil)
	e := NewEngine(tr, nil)
	e.info = DeviceInfoModel{
		PropertyMap: map[uint16]PropertyInfo{
			uint16(DPC_WhiteBalance): {TypeCode: TC_UINT16, GetSet: GetAndSet},
		},
	}

	if err := e.SetValue(uint16(DPC_WhiteBalance), NewUint16(2)); err != nil {
		t.Fatalf("SetValue() = %v, want nil", err)
	}
	cur := e.info.PropertyMap[uint16(DPC_WhiteBalance)].Current
	if !cur.Equal(NewUint16(2)) {
		t.Errorf("cached current = %+v, want UINT16(2)", cur)
	}
}

func TestProbeUnknownProperty(t *testing.T) {
	e := NewEngine(newMockTransport(), nil)
	e.info = DeviceInfoModel{PropertyMap: map[uint16]PropertyInfo{}}

	if err := e.Probe(0x5005); !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("Probe() = %v, want ErrUnknownProperty", err)
	}
}

func TestEnumTableDefaultsToZeroOnNoMatch(t *testing.T) {
	e := NewEngine(newMockTransport(), nil)
	e.info = DeviceInfoModel{
		PropertyMap: map[uint16]PropertyInfo{
			uint16(DPC_WhiteBalance): {
				TypeCode: TC_UINT16,
				Form:     FC_ENUM,
				Range:    []PropertyValue{NewUint16(1), NewUint16(2), NewUint16(3)},
				Current:  NewUint16(99), // does not match any entry
			},
		},
	}

	_, idx := e.EnumTable(uint16(DPC_WhiteBalance))
	if idx != 0 {
		t.Errorf("EnumTable index on no match = %d, want 0", idx)
	}
}
