package ptp

// LabeledValue pairs a human-readable label with the underlying value,
// as returned by Engine.EnumTable.
type LabeledValue struct {
	Label string
	Value PropertyValue
}

// Engine is the high-level PTP API a caller programs against. It owns
// a DeviceInfoModel and the per-property cache, issuing commands
// through a single Transport in strict program order: one command in
// flight at a time, no retries, no suspension beyond the Transport
// call itself.
//
// Engine is parameterized over the Transport capability rather than a
// concrete camera type, so the same Engine works against PTP/IP,
// serial, or any other transport that can round-trip a command.
type Engine struct {
	transport Transport
	log       Logger

	info DeviceInfoModel
}

// NewEngine constructs an Engine against transport. A nil log installs
// NopLogger.
func NewEngine(transport Transport, log Logger) *Engine {
	if log == nil {
		log = NopLogger{}
	}
	return &Engine{transport: transport, log: log}
}

// Initialize issues GetDeviceInfo and populates the device model. It
// must be called before any other method that reads device state.
func (e *Engine) Initialize() error {
	e.log.Debugf("ptp: GetDeviceInfo")
	result, data, err := e.transport.SendCommand(uint16(OC_GetDeviceInfo), nil, nil, 0xFFFFFFFF)
	if err != nil {
		return newTransportError(err)
	}
	if ResponseCode(result) != RC_OK {
		return newDeviceResult(result)
	}
	info, err := ParseDeviceInfo(data)
	if err != nil {
		return err
	}
	e.info = info
	return nil
}

func (e *Engine) StandardVersion() uint16 { return e.info.StandardVersion }

// VendorExtension returns the vendor extension ID. When raw is false
// (the default callers should use), NormalizeVendor is applied first to
// correct known vendor misreports in the device's own GetDeviceInfo
// reply.
func (e *Engine) VendorExtension(raw bool) uint32 {
	if raw {
		return e.info.VendorExtensionID
	}
	return e.info.EffectiveVendorID()
}

func (e *Engine) Manufacturer() string  { return e.info.Manufacturer }
func (e *Engine) Model() string         { return e.info.Model }
func (e *Engine) Serial() string        { return e.info.SerialNumber }
func (e *Engine) DeviceVersion() string { return e.info.DeviceVersion }

// Operations, Events, CaptureFormats and ImageFormats return resolved
// name strings in the device's reported order, using the effective
// (normalized) vendor ID for any vendor-band code.
func (e *Engine) Operations() []string {
	vendor := e.VendorExtension(false)
	out := make([]string, len(e.info.OperationsSupported))
	for i, code := range e.info.OperationsSupported {
		out[i] = OperationCodeAsString(code, vendor)
	}
	return out
}

func (e *Engine) Events() []string {
	vendor := e.VendorExtension(false)
	out := make([]string, len(e.info.EventsSupported))
	for i, code := range e.info.EventsSupported {
		out[i] = EventCodeAsString(code, vendor)
	}
	return out
}

func (e *Engine) CaptureFormats() []string {
	out := make([]string, len(e.info.CaptureFormats))
	for i, f := range e.info.CaptureFormats {
		out[i] = f.String()
	}
	return out
}

func (e *Engine) ImageFormats() []string {
	out := make([]string, len(e.info.ImageFormats))
	for i, f := range e.info.ImageFormats {
		out[i] = f.String()
	}
	return out
}

// IsOperationSupported reports whether code appears in
// operationsSupported.
func (e *Engine) IsOperationSupported(code uint16) bool {
	for _, c := range e.info.OperationsSupported {
		if c == code {
			return true
		}
	}
	return false
}

// PropertyTypeCode, PropertyForm and IsPropertySettable read the
// cached PropertyInfo for code without probing; they return the zero
// value when code is unknown or unprobed.
func (e *Engine) PropertyTypeCode(code uint16) TypeCode {
	return e.info.PropertyMap[code].TypeCode
}

func (e *Engine) PropertyForm(code uint16) FormCode {
	return e.info.PropertyMap[code].Form
}

func (e *Engine) IsPropertySettable(code uint16) bool {
	return e.info.PropertyMap[code].GetSet.Settable()
}

// Probe issues GetDevicePropDesc for code and overwrites the cached
// PropertyInfo on a successful reply. A non-OK result code leaves the
// cache untouched.
func (e *Engine) Probe(code uint16) error {
	if _, ok := e.info.PropertyMap[code]; !ok {
		return ErrUnknownProperty
	}

	e.log.Debugf("ptp: GetDevicePropDesc 0x%04x", code)
	result, data, err := e.transport.SendCommand(uint16(OC_GetDevicePropDesc), []uint32{uint32(code)}, nil, 0xFFFFFFFF)
	if err != nil {
		return newTransportError(err)
	}
	if ResponseCode(result) != RC_OK {
		return newDeviceResult(result)
	}

	gotCode, info, err := parsePropertyDesc(NewCursor(data))
	if err == ErrTruncated {
		return &Error{Kind: Malformed, Message: "truncated GetDevicePropDesc reply", Cause: err}
	}
	if err != nil {
		return err
	}
	if gotCode != code {
		return &Error{Kind: Malformed, Message: "GetDevicePropDesc reply code mismatch"}
	}
	e.info.PropertyMap[code] = info
	return nil
}

// GetCurrent returns the cached current value for code, probing first
// if the property has never been probed, then always re-fetching the
// live value with GetDevicePropValue.
func (e *Engine) GetCurrent(code uint16) (PropertyValue, error) {
	info, ok := e.info.PropertyMap[code]
	if !ok {
		return PropertyValue{}, ErrUnknownProperty
	}
	if !info.Probed() {
		if err := e.Probe(code); err != nil {
			return PropertyValue{}, err
		}
		info = e.info.PropertyMap[code]
	}

	e.log.Debugf("ptp: GetDevicePropValue 0x%04x", code)
	result, data, err := e.transport.SendCommand(uint16(OC_GetDevicePropValue), []uint32{uint32(code)}, nil, 0xFFFFFFFF)
	if err != nil {
		return PropertyValue{}, newTransportError(err)
	}
	if ResponseCode(result) != RC_OK {
		return PropertyValue{}, newDeviceResult(result)
	}

	current, err := NewCursor(data).ReadValue(info.TypeCode)
	if err != nil {
		return PropertyValue{}, err
	}
	info.Current = current
	e.info.PropertyMap[code] = info
	return current, nil
}

// GetFactory returns the cached factory-default value for code. It
// never probes; call Probe first if the property is unprobed.
func (e *Engine) GetFactory(code uint16) (PropertyValue, error) {
	info, ok := e.info.PropertyMap[code]
	if !ok {
		return PropertyValue{}, ErrUnknownProperty
	}
	return info.Factory, nil
}

// SetValue encodes value and issues SetDevicePropValue for code. It
// fails without touching the transport when the value's tag disagrees
// with the cached type code (TypeMismatch) or the property is not
// settable (NotSettable).
func (e *Engine) SetValue(code uint16, value PropertyValue) error {
	info, ok := e.info.PropertyMap[code]
	if !ok {
		return ErrUnknownProperty
	}
	if value.Tag() != info.TypeCode {
		return newTypeMismatch(info.TypeCode, value.Tag())
	}
	if !info.GetSet.Settable() {
		return ErrNotSettable
	}

	var buf Buffer
	if err := buf.WriteValue(value); err != nil {
		return err
	}

	e.log.Debugf("ptp: SetDevicePropValue 0x%04x", code)
	result, _, err := e.transport.SendCommand(uint16(OC_SetDevicePropValue), []uint32{uint32(code)}, buf.Bytes(), 0)
	if err != nil {
		return newTransportError(err)
	}
	if ResponseCode(result) != RC_OK {
		return newDeviceResult(result)
	}
	info.Current = value
	e.info.PropertyMap[code] = info
	return nil
}

// EnumTable returns the ordered {label, value} pairs for an ENUM-form
// property's Range, labels resolved with the effective vendor ID, and
// the index of the current value if it matches an entry exactly. A
// current value with no exact match yields index 0, not -1.
func (e *Engine) EnumTable(code uint16) ([]LabeledValue, int) {
	info := e.info.PropertyMap[code]
	vendor := e.VendorExtension(false)

	out := make([]LabeledValue, len(info.Range))
	idx := 0
	for i, v := range info.Range {
		out[i] = LabeledValue{Label: labelFor(code, v, vendor), Value: v}
		if v.Equal(info.Current) {
			idx = i
		}
	}
	return out, idx
}

func labelFor(code uint16, v PropertyValue, vendor uint32) string {
	switch v.Tag() {
	case TC_UINT8:
		u, _ := v.Uint8()
		return PropertyUint8String(code, u, vendor)
	case TC_UINT16:
		u, _ := v.Uint16()
		return PropertyUint16String(code, u, vendor)
	case TC_UINT32:
		u, _ := v.Uint32()
		return PropertyUint32String(code, u, vendor)
	case TC_STRING:
		s, _ := v.StringValue()
		return s
	default:
		s, _ := v.StringValue()
		if s != "" {
			return s
		}
		return v.Tag().String()
	}
}

// RangeOf returns (min, max, step, true) when code's form is RANGE, or
// the zero values and false otherwise.
func (e *Engine) RangeOf(code uint16) (min, max, step PropertyValue, ok bool) {
	info := e.info.PropertyMap[code]
	if info.Form != FC_RANGE || len(info.Range) != 3 {
		return PropertyValue{}, PropertyValue{}, PropertyValue{}, false
	}
	return info.Range[0], info.Range[1], info.Range[2], true
}

// InitiateCapture triggers a still capture. When opcode 0x100E is
// absent from operationsSupported the transport is never invoked.
func (e *Engine) InitiateCapture() error {
	if !e.IsOperationSupported(uint16(OC_InitiateCapture)) {
		return ErrNotSupported
	}

	e.log.Debugf("ptp: InitiateCapture")
	result, _, err := e.transport.SendCommand(uint16(OC_InitiateCapture), []uint32{0, 0}, nil, 0)
	if err != nil {
		return newTransportError(err)
	}
	if ResponseCode(result) != RC_OK {
		return newDeviceResult(result)
	}
	return nil
}

// BatteryPercent normalizes property 0x5001 (BatteryLevel) into
// [0,100]. It returns -1 if the property has never been probed.
// RANGE form takes [min, max, _] directly; ENUM form computes min/max
// over every range entry; current is clamped into [min, max] before
// the linear interpolation, and max == min yields 100.
func (e *Engine) BatteryPercent() float64 {
	info, ok := e.info.PropertyMap[uint16(DPC_BatteryLevel)]
	if !ok || !info.Probed() {
		return -1
	}

	var min, max float64
	switch info.Form {
	case FC_RANGE:
		if len(info.Range) != 3 {
			return -1
		}
		lo, err1 := info.Range[0].AsU64()
		hi, err2 := info.Range[1].AsU64()
		if err1 != nil || err2 != nil {
			return -1
		}
		min, max = float64(lo), float64(hi)
	case FC_ENUM:
		if len(info.Range) == 0 {
			return -1
		}
		first, err := info.Range[0].AsU64()
		if err != nil {
			return -1
		}
		min, max = float64(first), float64(first)
		for _, v := range info.Range[1:] {
			n, err := v.AsU64()
			if err != nil {
				return -1
			}
			if float64(n) < min {
				min = float64(n)
			}
			if float64(n) > max {
				max = float64(n)
			}
		}
	default:
		return -1
	}

	cur, err := info.Current.AsU64()
	if err != nil {
		return -1
	}
	val := float64(cur)
	if val < min {
		val = min
	}
	if val > max {
		val = max
	}

	if max == min {
		return 100.0
	}
	if val >= max {
		return 100.0
	}
	if val <= min {
		return 0.0
	}
	return (val - min) * 100.0 / (max - min)
}
