package ptp

// DeviceInfoModel holds the parsed reply to GetDeviceInfo (0x1001).
type DeviceInfoModel struct {
	StandardVersion            uint16
	VendorExtensionID          uint32
	VendorExtensionVersion     uint16
	VendorExtensionDescription string
	FunctionalMode             uint16

	// OperationsSupported and EventsSupported preserve the device's
	// reported order; lookups against them are linear, not sorted.
	OperationsSupported []uint16
	EventsSupported      []uint16
	PropertiesSupported  []uint16

	CaptureFormats []ObjectFormatCode
	ImageFormats   []ObjectFormatCode

	Manufacturer   string
	Model          string
	DeviceVersion  string
	SerialNumber   string

	// PropertyMap holds one entry per code in PropertiesSupported,
	// starting as the zero PropertyInfo (TypeCode == TC_NONE) until
	// Engine.Probe populates it.
	PropertyMap map[uint16]PropertyInfo
}

// EffectiveVendorID applies NormalizeVendor to the model's raw reported
// vendor ID and manufacturer string.
func (m *DeviceInfoModel) EffectiveVendorID() uint32 {
	return NormalizeVendor(m.VendorExtensionID, m.Manufacturer)
}

// ParseDeviceInfo decodes a GetDeviceInfo reply payload, whose fields
// arrive in this exact order:
//
//	u16 standardVersion | u32 vendorExtensionId | u16 vendorExtensionVersion |
//	string vendorExtensionDescription | u16 functionalMode |
//	array<u16> operationsSupported | array<u16> eventsSupported |
//	array<u16> propertiesSupported | array<u16> captureFormats |
//	array<u16> imageFormats | string manufacturer | string model |
//	string deviceVersion | string serialNumber
func ParseDeviceInfo(data []byte) (DeviceInfoModel, error) {
	c := NewCursor(data)
	var m DeviceInfoModel

	var err error
	if m.StandardVersion, err = c.ReadUint16(); err != nil {
		return m, malformedDeviceInfo(err)
	}
	if m.VendorExtensionID, err = c.ReadUint32(); err != nil {
		return m, malformedDeviceInfo(err)
	}
	if m.VendorExtensionVersion, err = c.ReadUint16(); err != nil {
		return m, malformedDeviceInfo(err)
	}
	if m.VendorExtensionDescription, err = c.ReadString(); err != nil {
		return m, malformedDeviceInfo(err)
	}
	if m.FunctionalMode, err = c.ReadUint16(); err != nil {
		return m, malformedDeviceInfo(err)
	}
	if m.OperationsSupported, err = c.ReadUint16Array(); err != nil {
		return m, malformedDeviceInfo(err)
	}
	if m.EventsSupported, err = c.ReadUint16Array(); err != nil {
		return m, malformedDeviceInfo(err)
	}
	if m.PropertiesSupported, err = c.ReadUint16Array(); err != nil {
		return m, malformedDeviceInfo(err)
	}
	captureFormats, err := c.ReadUint16Array()
	if err != nil {
		return m, malformedDeviceInfo(err)
	}
	imageFormats, err := c.ReadUint16Array()
	if err != nil {
		return m, malformedDeviceInfo(err)
	}
	m.CaptureFormats = toObjectFormatCodes(captureFormats)
	m.ImageFormats = toObjectFormatCodes(imageFormats)

	if m.Manufacturer, err = c.ReadString(); err != nil {
		return m, malformedDeviceInfo(err)
	}
	if m.Model, err = c.ReadString(); err != nil {
		return m, malformedDeviceInfo(err)
	}
	if m.DeviceVersion, err = c.ReadString(); err != nil {
		return m, malformedDeviceInfo(err)
	}
	if m.SerialNumber, err = c.ReadString(); err != nil {
		return m, malformedDeviceInfo(err)
	}

	m.PropertyMap = make(map[uint16]PropertyInfo, len(m.PropertiesSupported))
	for _, code := range m.PropertiesSupported {
		m.PropertyMap[code] = PropertyInfo{}
	}

	return m, nil
}

func toObjectFormatCodes(raw []uint16) []ObjectFormatCode {
	out := make([]ObjectFormatCode, len(raw))
	for i, v := range raw {
		out[i] = ObjectFormatCode(v)
	}
	return out
}

func malformedDeviceInfo(cause error) error {
	return &Error{Kind: Malformed, Message: "truncated GetDeviceInfo reply", Cause: cause}
}
