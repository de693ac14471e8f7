package ptp

// standardUint16Values holds the standard (non-vendor, high bit clear)
// property-value labels, sorted by (code, val).
var standardUint16Values = []uint16ValueName{
	{uint16(DPC_WhiteBalance), 0x0000, "Undefined"},
	{uint16(DPC_WhiteBalance), 0x0001, "Manual"},
	{uint16(DPC_WhiteBalance), 0x0002, "Automatic"},
	{uint16(DPC_WhiteBalance), 0x0003, "One-push Automatic"},
	{uint16(DPC_WhiteBalance), 0x0004, "Daylight"},
	{uint16(DPC_WhiteBalance), 0x0005, "Flourescent"},
	{uint16(DPC_WhiteBalance), 0x0006, "Tungsten"},
	{uint16(DPC_WhiteBalance), 0x0007, "Flash"},
	{uint16(DPC_FocusMode), 0x0000, "Undefined"},
	{uint16(DPC_FocusMode), 0x0001, "Manual"},
	{uint16(DPC_FocusMode), 0x0002, "Automatic"},
	{uint16(DPC_FocusMode), 0x0003, "Automatic/Macro"},
	{uint16(DPC_FlashMode), 0x0000, "Undefined"},
	{uint16(DPC_FlashMode), 0x0001, "auto flash"},
	{uint16(DPC_FlashMode), 0x0002, "Flash off"},
	{uint16(DPC_FlashMode), 0x0003, "Fill flash"},
	{uint16(DPC_FlashMode), 0x0004, "Red eye auto"},
	{uint16(DPC_FlashMode), 0x0005, "Red eye fill"},
	{uint16(DPC_FlashMode), 0x0006, "External Sync"},
	{uint16(DPC_ExposureProgramMode), 0x0000, "Undefined"},
	{uint16(DPC_ExposureProgramMode), 0x0001, "Manual"},
	{uint16(DPC_ExposureProgramMode), 0x0002, "Automatic"},
	{uint16(DPC_ExposureProgramMode), 0x0003, "Aperture Priority"},
	{uint16(DPC_ExposureProgramMode), 0x0004, "Shutter Priority"},
	{uint16(DPC_ExposureProgramMode), 0x0005, "Program Creative"},
	{uint16(DPC_ExposureProgramMode), 0x0006, "Program Action"},
	{uint16(DPC_ExposureProgramMode), 0x0007, "Portait"},
	// ExposureIndex (0x500f) is handled as a special case, not a table.
}

// standardUint32Values holds the standard 32-bit property-value
// labels. It is empty: ExposureTime, the only standard u32 property,
// is handled as a special case, not a table entry.
var standardUint32Values = []uint32ValueName{}
