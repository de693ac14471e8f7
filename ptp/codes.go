package ptp

import (
	"fmt"
	"sort"
)

// OperationCode is a 16-bit PTP command identifier. Standard codes
// occupy 0x1000-0x1FFF; vendor codes occupy 0x9000-0x9FFF.
type OperationCode uint16

// EventCode is a 16-bit asynchronous device-originated code. Standard
// codes occupy 0x4000-0x4FFF; vendor codes occupy 0xC000-0xCFFF.
type EventCode uint16

// ResponseCode is the 16-bit PTP Response-phase code returned by a
// device for a command.
type ResponseCode uint32

// TransactionID and SessionID are PTP/IP-level sequencing values
// threaded through every OperationRequest/Response; they live here
// rather than in a transport package because every Transport
// implementation needs the same wire type.
type TransactionID uint32
type SessionID uint32

const (
	OC_Undefined            OperationCode = 0x1000
	OC_GetDeviceInfo        OperationCode = 0x1001
	OC_OpenSession          OperationCode = 0x1002
	OC_CloseSession         OperationCode = 0x1003
	OC_GetStorageIDs        OperationCode = 0x1004
	OC_GetStorageInfo       OperationCode = 0x1005
	OC_GetNumObjects        OperationCode = 0x1006
	OC_GetObjectHandles     OperationCode = 0x1007
	OC_GetObjectInfo        OperationCode = 0x1008
	OC_GetObject            OperationCode = 0x1009
	OC_GetThumb             OperationCode = 0x100A
	OC_DeleteObject         OperationCode = 0x100B
	OC_SendObjectInfo       OperationCode = 0x100C
	OC_SendObject           OperationCode = 0x100D
	OC_InitiateCapture      OperationCode = 0x100E
	OC_FormatStore          OperationCode = 0x100F
	OC_ResetDevice          OperationCode = 0x1010
	OC_SelfTest             OperationCode = 0x1011
	OC_SetObjectProtection  OperationCode = 0x1012
	OC_PowerDown            OperationCode = 0x1013
	OC_GetDevicePropDesc    OperationCode = 0x1014
	OC_GetDevicePropValue   OperationCode = 0x1015
	OC_SetDevicePropValue   OperationCode = 0x1016
	OC_ResetDevicePropValue OperationCode = 0x1017
	OC_TerminateOpenCapture OperationCode = 0x1018
	OC_MoveObject           OperationCode = 0x1019
	OC_CopyObject           OperationCode = 0x101A
	OC_GetPartialObject     OperationCode = 0x101B
	OC_InitiateOpenCapture  OperationCode = 0x101C
)

const (
	EC_Undefined            EventCode = 0x4000
	EC_CancelTransaction    EventCode = 0x4001
	EC_ObjectAdded          EventCode = 0x4002
	EC_ObjectRemoved        EventCode = 0x4003
	EC_StoreAdded           EventCode = 0x4004
	EC_StoreRemoved         EventCode = 0x4005
	EC_DevicePropChanged    EventCode = 0x4006
	EC_ObjectInfoChanged    EventCode = 0x4007
	EC_DeviceInfoChanged    EventCode = 0x4008
	EC_RequestObjectTransfer EventCode = 0x4009
	EC_StoreFull            EventCode = 0x400A
	EC_DeviceReset          EventCode = 0x400B
	EC_StoreInfoChanged     EventCode = 0x400C
	EC_CaptureComplete      EventCode = 0x400D
	EC_UnreportedStatus     EventCode = 0x400E
)

const (
	RC_Undefined              ResponseCode = 0x2000
	RC_OK                     ResponseCode = 0x2001
	RC_GeneralError           ResponseCode = 0x2002
	RC_SessionNotOpen         ResponseCode = 0x2003
	RC_InvalidTransactionID   ResponseCode = 0x2004
	RC_OperationNotSupported  ResponseCode = 0x2005
	RC_ParameterNotSupported  ResponseCode = 0x2006
	RC_IncompleteTransfer     ResponseCode = 0x2007
	RC_InvalidStorageID       ResponseCode = 0x2008
	RC_InvalidObjectHandle    ResponseCode = 0x2009
	RC_DeviceBusy             ResponseCode = 0x2019
	RC_InvalidParameter       ResponseCode = 0x201D
	RC_SessionAlreadyOpen     ResponseCode = 0x201E
)

// Vendor extension IDs, per PIMA assignment.
const (
	VendorNone     uint32 = 0x00000000
	VendorNikon    uint32 = 0x0000000A
	VendorCanon    uint32 = 0x0000000B
	// VendorMicrosoftMisreport is the vendor ID some Nikon bodies
	// mistakenly report instead of VendorNikon. NormalizeVendor folds
	// it back to VendorNikon when paired with manufacturer "Nikon".
	VendorMicrosoftMisreport uint32 = 0x00000006
)

// NormalizeVendor corrects a known vendor-ID misreport: a camera that
// reports VendorMicrosoftMisreport but whose manufacturer string is
// exactly "Nikon" is treated as VendorNikon for every table lookup.
// Every other (vendorID, manufacturer) pair passes through unchanged.
func NormalizeVendor(vendorID uint32, manufacturer string) uint32 {
	if vendorID == VendorMicrosoftMisreport && manufacturer == "Nikon" {
		return VendorNikon
	}
	return vendorID
}

func hexCode(code uint16) string {
	return fmt.Sprintf("0x%04x", code)
}

// codeName is a single entry in a sorted vendor lookup table.
type codeName struct {
	code uint16
	name string
}

func lookupCode(table []codeName, code uint16) (string, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].code >= code })
	if i < len(table) && table[i].code == code {
		return table[i].name, true
	}
	return "", false
}

// --- Standard dense tables, indexed directly by the code's low bits. ---

var standardOperationNames = []string{
	"Undefined", "GetDeviceInfo", "OpenSession", "CloseSession", "GetStorageIDs",
	"GetStorageInfo", "GetNumObjects", "GetObjectHandles", "GetObjectInfo",
	"GetObject", "GetThumb", "DeleteObject", "SendObjectInfo", "SendObject",
	"InitiateCapture", "FormatStore", "ResetDevice", "SelfTest",
	"SetObjectProtection", "PowerDown", "GetDevicePropDesc", "GetDevicePropValue",
	"SetDevicePropValue", "ResetDevicePropValue", "TerminateOpenCapture",
	"MoveObject", "CopyObject", "GetPartialObject", "InitiateOpenCapture",
}

var standardEventNames = []string{
	"Undefined", "CancelTransaction", "ObjectAdded", "ObjectRemoved", "StoreAdded",
	"StoreRemoved", "DevicePropChanged", "ObjectInfoChanged", "DeviceInfoChanged",
	"RequestObjectTransfer", "StoreFull", "DeviceReset", "StoreInfoChanged",
	"CaptureComplete", "UnreportedStatus",
}

var standardPropertyNames = []string{
	"Undefined", "BatteryLevel", "FunctionalMode", "ImageSize", "CompressionSetting",
	"WhiteBalance", "RGB Gain", "F-Number", "FocalLength", "FocusDistance",
	"FocusMode", "ExposureMeteringMode", "FlashMode", "ExposureTime",
	"ExposureProgramMode", "ExposureIndex", "ExposureBiasCompensation", "DateTime",
	"CaptureDelay", "StillCaptureMode", "Contrast", "Sharpness", "DigitalZoom",
	"EffectMode", "BurstNumber", "BurstInterval", "TimelapseNumber",
	"TimelapseInterval", "FocusMeteringMode", "UploadURL", "Artist", "CopyrightInfo",
}

// --- Vendor lookup dispatch: standard band by direct index, vendor
// band by per-vendor sorted table. ---

// OperationCodeAsString resolves code to its human-readable name,
// given the device's effective (already-normalized) vendor extension
// ID.
func OperationCodeAsString(code uint16, vendorID uint32) string {
	if code&0xF000 == 0x1000 {
		idx := code & 0x0FFF
		if int(idx) < len(standardOperationNames) {
			return standardOperationNames[idx]
		}
		return "Reserved-" + hexSuffix(code)
	}
	if code&0xF000 == 0x9000 {
		switch vendorID {
		case VendorNikon:
			if n, ok := lookupCode(nikonOperationNames, code); ok {
				return n
			}
		case VendorCanon:
			if n, ok := lookupCode(canonOperationNames, code); ok {
				return n
			}
		}
		return fmt.Sprintf("Vendor[0x%x]-%s", vendorID, hexSuffix(code))
	}
	return "Invalid-" + hexSuffix(code)
}

// EventCodeAsString mirrors OperationCodeAsString for event codes.
func EventCodeAsString(code uint16, vendorID uint32) string {
	if code&0xF000 == 0x4000 {
		idx := code & 0x0FFF
		if int(idx) < len(standardEventNames) {
			return standardEventNames[idx]
		}
		return "Reserved-" + hexSuffix(code)
	}
	if code&0xF000 == 0xC000 {
		switch vendorID {
		case VendorNikon:
			if n, ok := lookupCode(nikonEventNames, code); ok {
				return n
			}
		case VendorCanon:
			if n, ok := lookupCode(canonEventNames, code); ok {
				return n
			}
		}
		return fmt.Sprintf("Vendor[0x%x]-%s", vendorID, hexSuffix(code))
	}
	return "Invalid-" + hexSuffix(code)
}

// PropertyCodeAsString mirrors OperationCodeAsString for property
// codes.
func PropertyCodeAsString(code uint16, vendorID uint32) string {
	if code&0xF000 == 0x5000 {
		idx := code & 0x0FFF
		if int(idx) < len(standardPropertyNames) {
			return standardPropertyNames[idx]
		}
		return "Reserved-" + hexSuffix(code)
	}
	if code&0xF000 == 0xD000 {
		switch vendorID {
		case VendorNikon:
			if n, ok := lookupCode(nikonPropertyNames, code); ok {
				return n
			}
		case VendorCanon:
			if n, ok := lookupCode(canonPropertyNames, code); ok {
				return n
			}
		}
		return fmt.Sprintf("Vendor[0x%x]-%s", vendorID, hexSuffix(code))
	}
	return "Invalid-" + hexSuffix(code)
}

// ResultCodeString renders a raw PTP response code as "0x<hex>
// (<label>)", per spec's glossary resultCode formatter.
func ResultCodeString(code uint32) string {
	label, ok := responseCodeLabels[ResponseCode(code)]
	if !ok {
		label = "Unknown"
	}
	return fmt.Sprintf("0x%04x (%s)", code, label)
}

var responseCodeLabels = map[ResponseCode]string{
	RC_Undefined:             "Undefined",
	RC_OK:                    "OK",
	RC_GeneralError:          "General Error",
	RC_SessionNotOpen:        "Session Not Open",
	RC_InvalidTransactionID:  "Invalid TransactionID",
	RC_OperationNotSupported: "Operation Not Supported",
	RC_ParameterNotSupported: "Parameter Not Supported",
	RC_IncompleteTransfer:    "Incomplete Transfer",
	RC_InvalidStorageID:      "Invalid StorageID",
	RC_InvalidObjectHandle:   "Invalid Object Handle",
	RC_DeviceBusy:            "Device Busy",
	RC_InvalidParameter:      "Invalid Parameter",
	RC_SessionAlreadyOpen:    "Session Already Open",
}

func hexSuffix(code uint16) string {
	return fmt.Sprintf("%04x", code)
}

// PropertyUint8String, PropertyUint16String and PropertyUint32String
// resolve a property value to a human-readable label. Special-cased
// properties (F-Number, ExposureTime, ExposureIndex) bypass normal
// table dispatch entirely. PropertyUint8String has no label table and
// always renders the value as two-digit hex, e.g. "0x25".
func PropertyUint8String(code uint16, val uint8, vendorID uint32) string {
	return fmt.Sprintf("0x%02x", val)
}

func PropertyUint16String(code uint16, val uint16, vendorID uint32) string {
	switch code {
	case uint16(DPC_FNumber):
		return fmt.Sprintf("f/%.1f", float64(val)/100.0)
	case uint16(DPC_ExposureIndex):
		if val == 0xFFFF {
			return "Auto ISO"
		}
		return fmt.Sprintf("ISO %d", val)
	}

	if val&0x8000 == 0 {
		if n, ok := lookupUint16Value(standardUint16Values, code, val); ok {
			return n
		}
		return "Reserved-" + fmt.Sprintf("%04x", val)
	}

	var table []uint16ValueName
	switch vendorID {
	case VendorNikon:
		table = nikonUint16Values
	}
	if n, ok := lookupUint16Value(table, code, val); ok {
		return n
	}
	return fmt.Sprintf("Vendor[0x%x]-%04x", vendorID, val)
}

func PropertyUint32String(code uint16, val uint32, vendorID uint32) string {
	if code == uint16(DPC_ExposureTime) {
		if val == 0xFFFFFFFF {
			return "Bulb"
		}
		return fmt.Sprintf("%.1f ms", float64(val)/10.0)
	}

	if code&0x8000 == 0 {
		if n, ok := lookupUint32Value(standardUint32Values, code, val); ok {
			return n
		}
		return "Reserved-" + fmt.Sprintf("%08x", val)
	}

	var table []uint32ValueName
	switch vendorID {
	case VendorNikon:
		table = nikonUint32Values
	}
	if n, ok := lookupUint32Value(table, code, val); ok {
		return n
	}
	return fmt.Sprintf("Vendor[0x%x]-%08x", vendorID, val)
}

type uint16ValueName struct {
	code uint16
	val  uint16
	name string
}

type uint32ValueName struct {
	code uint16
	val  uint32
	name string
}

// lookupUint16Value binary-searches a table kept sorted by the
// composite (code, val) key.
func lookupUint16Value(table []uint16ValueName, code, val uint16) (string, bool) {
	i := sort.Search(len(table), func(i int) bool {
		e := table[i]
		if e.code != code {
			return e.code >= code
		}
		return e.val >= val
	})
	if i < len(table) && table[i].code == code && table[i].val == val {
		return table[i].name, true
	}
	return "", false
}

func lookupUint32Value(table []uint32ValueName, code uint16, val uint32) (string, bool) {
	i := sort.Search(len(table), func(i int) bool {
		e := table[i]
		if e.code != code {
			return e.code >= code
		}
		return e.val >= val
	})
	if i < len(table) && table[i].code == code && table[i].val == val {
		return table[i].name, true
	}
	return "", false
}
