package ptp

// Nikon vendor-extension tables (vendor ID VendorNikon). All tables
// are sorted by their key, matched by binary search.

var nikonOperationNames = []codeName{
	{0x90C0, "NIKON Capture"},
	{0x90C1, "NIKON AfDrive"},
	{0x90C2, "NIKON SetControlMode"},
	{0x90C3, "NIKON DelImageSDRAM"},
	{0x90C4, "NIKON 90c4"},
	{0x90C5, "NIKON CurveDownload"},
	{0x90C6, "NIKON CurveUpload"},
	{0x90C7, "NIKON CheckEvent"},
	{0x90C8, "NIKON DeviceReady"},
	{0x90C9, "NIKON SetPreWBData"},
	{0x90CA, "NIKON 90ca"},
	{0x90CB, "NIKON AfCaptureSDRAM"},
	{0x90CC, "NIKON AfCaptureSDRAM"},
	{0x90CD, "NIKON AfCaptureSDRAM"},
	{0x90CE, "NIKON AfCaptureSDRAM"},
	{0x90CF, "NIKON AfCaptureSDRAM"},
	{0x9200, "NIKON 9200"},
	{0x9201, "NIKON 9201"},
	{0x9202, "NIKON 9202"},
	{0x9203, "NIKON 9203"},
	{0x9204, "NIKON 9204"},
	{0x9205, "NIKON 9205"},
	{0x9206, "NIKON 9206"},
	{0x9801, "MTP GetObjectPropsSupported"},
	{0x9802, "MTP GetObjectPropDesc"},
	{0x9803, "MTP GetObjectPropValue"},
	{0x9804, "MTP SetObjectPropValue"},
	{0x9805, "MTP GetObjPropList"},
}

var nikonEventNames = []codeName{
	{0xC000, "NIKON 0xc000"},
	{0xC101, "NIKON 0xc101"},
	{0xC102, "NIKON 0xc102"},
	{0xC103, "NIKON 0xc103"},
	{0xC104, "NIKON 0xc104"},
	{0xC105, "NIKON 0xc105"},
}

// nikonPropertyNames is empty: the source leaves Nikon property-code
// naming as a TODO ("// TODO: nikon?" in ptpPropertyString); an
// unresolved Nikon property code falls through to the
// "Vendor[0xa]-<hex>" format, same as any other undocumented vendor
// code.
var nikonPropertyNames = []codeName{}

var nikonUint16Values = []uint16ValueName{
	{uint16(DPC_WhiteBalance), 0x8010, "NIKON Cloudy"},
	{uint16(DPC_WhiteBalance), 0x8011, "NIKON Shade"},
	{uint16(DPC_WhiteBalance), 0x8012, "NIKON Color Temperature"},
	{uint16(DPC_WhiteBalance), 0x8013, "NIKON Preset White Balance"},
	{uint16(DPC_FlashMode), 0x8010, "NIKON Fill-flash"},
	{uint16(DPC_FlashMode), 0x8011, "NIKON Slow sync"},
	{uint16(DPC_FlashMode), 0x8012, "NIKON Rear curtain + Slow sync"},
	{uint16(DPC_FlashMode), 0x8013, "NIKON Slow sync + Red eye"},
	{uint16(DPC_ExposureProgramMode), 0x8010, "NIKON Auto"},
	{uint16(DPC_ExposureProgramMode), 0x8011, "NIKON Portrait"},
	{uint16(DPC_ExposureProgramMode), 0x8012, "NIKON Landscape"},
	{uint16(DPC_ExposureProgramMode), 0x8013, "NIKON Close up"},
	{uint16(DPC_ExposureProgramMode), 0x8014, "NIKON Sports"},
	{uint16(DPC_ExposureProgramMode), 0x8015, "NIKON Night portrait"},
	{uint16(DPC_ExposureProgramMode), 0x8016, "NIKON Night Landscape"},
}

// nikonUint32Values is empty: no Nikon u32 property besides
// ExposureTime, which is handled as a special case, has a known label
// table.
var nikonUint32Values = []uint32ValueName{}
