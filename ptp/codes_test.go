package ptp

import "testing"

func TestFNumberLabel(t *testing.T) {
	got := PropertyUint16String(uint16(DPC_FNumber), 280, VendorNikon)
	if got != "f/2.8" {
		t.Errorf("PropertyUint16String(FNumber, 280) = %q, want \"f/2.8\"", got)
	}
}

func TestExposureTimeBulb(t *testing.T) {
	got := PropertyUint32String(uint16(DPC_ExposureTime), 0xFFFFFFFF, VendorNikon)
	if got != "Bulb" {
		t.Errorf("PropertyUint32String(ExposureTime, 0xFFFFFFFF) = %q, want \"Bulb\"", got)
	}
}

func TestExposureTimeMilliseconds(t *testing.T) {
	got := PropertyUint32String(uint16(DPC_ExposureTime), 100, VendorNikon)
	if got != "10.0 ms" {
		t.Errorf("PropertyUint32String(ExposureTime, 100) = %q, want \"10.0 ms\"", got)
	}
}

func TestExposureIndexAutoISO(t *testing.T) {
	got := PropertyUint16String(uint16(DPC_ExposureIndex), 0xFFFF, VendorNikon)
	if got != "Auto ISO" {
		t.Errorf("PropertyUint16String(ExposureIndex, 0xFFFF) = %q, want \"Auto ISO\"", got)
	}
}

func TestExposureIndexISOValue(t *testing.T) {
	got := PropertyUint16String(uint16(DPC_ExposureIndex), 400, VendorNikon)
	if got != "ISO 400" {
		t.Errorf("PropertyUint16String(ExposureIndex, 400) = %q, want \"ISO 400\"", got)
	}
}

// A device that misreports its Nikon vendor extension ID as the
// Microsoft PTP/IP placeholder (0x06) must still resolve Nikon's
// vendor-specific codes once NormalizeVendor corrects it.
func TestVendorMisreportOverride(t *testing.T) {
	effective := NormalizeVendor(VendorMicrosoftMisreport, "Nikon")
	if effective != VendorNikon {
		t.Fatalf("NormalizeVendor(0x06, \"Nikon\") = 0x%x, want 0x%x", effective, VendorNikon)
	}

	got := OperationCodeAsString(0x90C1, effective)
	if got != "NIKON AfDrive" {
		t.Errorf("OperationCodeAsString(0x90C1, normalized) = %q, want \"NIKON AfDrive\"", got)
	}

	// Without normalization, the same raw ID resolves nothing useful.
	raw := OperationCodeAsString(0x90C1, VendorMicrosoftMisreport)
	if raw == "NIKON AfDrive" {
		t.Errorf("expected raw vendor ID 0x06 to NOT resolve 0x90C1 to the Nikon label")
	}
}

func TestVendorNormalizationUnchangedOtherwise(t *testing.T) {
	if v := NormalizeVendor(VendorMicrosoftMisreport, "Canon"); v != VendorMicrosoftMisreport {
		t.Errorf("NormalizeVendor(0x06, \"Canon\") = 0x%x, want unchanged 0x%x", v, VendorMicrosoftMisreport)
	}
	if v := NormalizeVendor(VendorCanon, "Nikon"); v != VendorCanon {
		t.Errorf("NormalizeVendor(VendorCanon, \"Nikon\") = 0x%x, want unchanged 0x%x", v, VendorCanon)
	}
}

func TestStandardOperationNameLookup(t *testing.T) {
	got := OperationCodeAsString(uint16(OC_GetDeviceInfo), VendorNone)
	if got != "GetDeviceInfo" {
		t.Errorf("OperationCodeAsString(GetDeviceInfo) = %q", got)
	}
}

func TestReservedStandardCodeFallback(t *testing.T) {
	got := OperationCodeAsString(0x1FFF, VendorNone)
	if got != "Reserved-1fff" {
		t.Errorf("OperationCodeAsString(0x1FFF) = %q, want \"Reserved-1fff\"", got)
	}
}

func TestUnknownVendorCodeFallback(t *testing.T) {
	got := OperationCodeAsString(0x9999, VendorCanon)
	want := "Vendor[0xb]-9999"
	if got != want {
		t.Errorf("OperationCodeAsString(0x9999, Canon) = %q, want %q", got, want)
	}
}

func TestCanonPropertyNameLookup(t *testing.T) {
	got := PropertyCodeAsString(0xD013, VendorCanon)
	if got != "WhiteBalance" {
		t.Errorf("PropertyCodeAsString(0xD013, Canon) = %q, want \"WhiteBalance\"", got)
	}
}
