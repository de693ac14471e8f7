// Package ptpfmt renders PTP wire values and codes into the strings a
// human operator reads: result codes, device-property values, and the
// ad-hoc hex-string argument format the CLI accepts. Both cmd/ptpctl
// and overlay call into it to render property values consistently.
package ptpfmt

import (
	"fmt"
	"strconv"

	"github.com/malc0mn/ptpcore/ptp"
)

// ResultCodeAsString renders a raw PTP response code for display.
func ResultCodeAsString(code uint32) string {
	return ptp.ResultCodeString(code)
}

// DevicePropValAsString renders v according to its own tag, dispatching
// to the special-cased formatters (F-Number, ExposureTime, ExposureIndex)
// and vendor tables through ptp.PropertyUint8String/16/32String. Values
// with no table-driven rendering fall back to a plain textual form:
// signed and 64-bit integers as decimal, strings as-is, and 128-bit
// values as the placeholder "0x(128-bit)".
func DevicePropValAsString(vendorID uint32, code uint16, v ptp.PropertyValue) string {
	switch v.Tag() {
	case ptp.TC_INT8:
		i, _ := v.Int8()
		return fmt.Sprintf("%d", i)
	case ptp.TC_UINT8:
		u, _ := v.Uint8()
		return ptp.PropertyUint8String(code, u, vendorID)
	case ptp.TC_INT16:
		i, _ := v.Int16()
		return fmt.Sprintf("%d", i)
	case ptp.TC_UINT16:
		u, _ := v.Uint16()
		return ptp.PropertyUint16String(code, u, vendorID)
	case ptp.TC_INT32:
		i, _ := v.Int32()
		return fmt.Sprintf("%d", i)
	case ptp.TC_UINT32:
		u, _ := v.Uint32()
		return ptp.PropertyUint32String(code, u, vendorID)
	case ptp.TC_INT64:
		i, _ := v.Int64()
		return fmt.Sprintf("%d", i)
	case ptp.TC_UINT64:
		u, _ := v.Uint64()
		return fmt.Sprintf("%d", u)
	case ptp.TC_INT128, ptp.TC_UINT128:
		return "0x(128-bit)"
	case ptp.TC_STRING:
		s, _ := v.StringValue()
		return s
	default:
		return "NONE"
	}
}

// FNumberAsString formats a raw u16 F-Number value, e.g. 280 -> "f/2.8".
func FNumberAsString(val uint16) string {
	return ptp.PropertyUint16String(uint16(ptp.DPC_FNumber), val, ptp.VendorNone)
}

// ExposureTimeAsString formats a raw u32 ExposureTime value, honoring
// the 0xFFFFFFFF "Bulb" special case.
func ExposureTimeAsString(val uint32) string {
	return ptp.PropertyUint32String(uint16(ptp.DPC_ExposureTime), val, ptp.VendorNone)
}

// ExposureIndexAsString formats a raw u16 ExposureIndex (ISO) value,
// honoring the 0xFFFF "Auto ISO" special case.
func ExposureIndexAsString(val uint16) string {
	return ptp.PropertyUint16String(uint16(ptp.DPC_ExposureIndex), val, ptp.VendorNone)
}

// HexStringToUint64 parses a "0x"-optional hex string into a uint64,
// rejecting values wider than bits. The CLI uses it to parse the
// 16-bit opcode of its opreq command and 16-bit property codes from
// argv.
func HexStringToUint64(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(trimHexPrefix(s), 16, bits)
	if err != nil {
		return 0, fmt.Errorf("ptpfmt: invalid hex value %q: %w", s, err)
	}
	return v, nil
}

func trimHexPrefix(s string) string {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
