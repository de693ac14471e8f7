package ptpfmt

import (
	"testing"

	"github.com/malc0mn/ptpcore/ptp"
)

func TestDevicePropValAsStringDispatchesByTag(t *testing.T) {
	cases := []struct {
		name string
		v    ptp.PropertyValue
		want string
	}{
		{"int8", ptp.NewInt8(-5), "-5"},
		{"uint32", ptp.NewUint32(42), "Reserved-0000002a"},
		{"string", ptp.NewString("hi"), "hi"},
	}
	for _, c := range cases {
		if got := DevicePropValAsString(ptp.VendorNone, 0, c.v); got != c.want {
			t.Errorf("%s: DevicePropValAsString() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestDevicePropValAsStringFNumber(t *testing.T) {
	v := ptp.NewUint16(280)
	got := DevicePropValAsString(ptp.VendorNone, uint16(ptp.DPC_FNumber), v)
	if got != "f/2.8" {
		t.Errorf("DevicePropValAsString(FNumber, 280) = %q, want \"f/2.8\"", got)
	}
}

func TestFNumberAsString(t *testing.T) {
	if got := FNumberAsString(280); got != "f/2.8" {
		t.Errorf("FNumberAsString(280) = %q, want \"f/2.8\"", got)
	}
}

func TestExposureTimeAsStringBulb(t *testing.T) {
	if got := ExposureTimeAsString(0xFFFFFFFF); got != "Bulb" {
		t.Errorf("ExposureTimeAsString(0xFFFFFFFF) = %q, want \"Bulb\"", got)
	}
}

func TestExposureIndexAsStringAuto(t *testing.T) {
	if got := ExposureIndexAsString(0xFFFF); got != "Auto ISO" {
		t.Errorf("ExposureIndexAsString(0xFFFF) = %q, want \"Auto ISO\"", got)
	}
}

func TestHexStringToUint64(t *testing.T) {
	cases := []struct {
		in   string
		bits int
		want uint64
	}{
		{"0x1000", 16, 0x1000},
		{"1000", 16, 0x1000},
		{"0XFF", 8, 0xFF},
		{"deadbeef", 32, 0xdeadbeef},
	}
	for _, c := range cases {
		got, err := HexStringToUint64(c.in, c.bits)
		if err != nil {
			t.Errorf("HexStringToUint64(%q, %d): %v", c.in, c.bits, err)
			continue
		}
		if got != c.want {
			t.Errorf("HexStringToUint64(%q, %d) = 0x%x, want 0x%x", c.in, c.bits, got, c.want)
		}
	}
}

func TestHexStringToUint64Invalid(t *testing.T) {
	if _, err := HexStringToUint64("not-hex", 16); err == nil {
		t.Error("expected error for invalid hex string")
	}
}

func TestHexStringToUint64OverflowsBitWidth(t *testing.T) {
	if _, err := HexStringToUint64("0x10000", 16); err == nil {
		t.Error("expected error for value exceeding 16-bit width")
	}
}

func TestResultCodeAsString(t *testing.T) {
	got := ResultCodeAsString(uint32(ptp.RC_OK))
	if got == "" {
		t.Error("ResultCodeAsString(RC_OK) returned empty string")
	}
}
