package ptp

import "testing"

func TestParseDeviceInfoNikonBody(t *testing.T) {
	model, err := ParseDeviceInfo(buildNikonDeviceInfoBytes())
	if err != nil {
		t.Fatalf("ParseDeviceInfo: %v", err)
	}

	if model.StandardVersion != 100 {
		t.Errorf("standardVersion = %d, want 100", model.StandardVersion)
	}
	if model.EffectiveVendorID() != 0x0A {
		t.Errorf("vendorExtension(false) = 0x%x, want 0x0A", model.EffectiveVendorID())
	}
	if model.Manufacturer != "Nikon" {
		t.Errorf("manufacturer = %q, want \"Nikon\"", model.Manufacturer)
	}
}

// buildNikonDeviceInfoBytes constructs a minimal but complete
// GetDeviceInfo reply body for a Nikon body reporting the raw
// (pre-normalization) vendor extension ID 0x0A directly: standard
// version 1.00, empty operation/event/property/format arrays, and
// manufacturer "Nikon" with empty model/version/serial strings.
func buildNikonDeviceInfoBytes() []byte {
	var buf Buffer
	buf.WriteUint16(0x0064)
	buf.WriteUint32(0x0000000A)
	buf.WriteUint16(0x0003)
	buf.WriteString("")
	buf.WriteUint16(0)
	buf.WriteUint16Array(nil)
	buf.WriteUint16Array(nil)
	buf.WriteUint16Array(nil)
	buf.WriteUint16Array(nil)
	buf.WriteUint16Array(nil)
	buf.WriteString("Nikon")
	buf.WriteString("")
	buf.WriteString("")
	buf.WriteString("")
	return buf.Bytes()
}
