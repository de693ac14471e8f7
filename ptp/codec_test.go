package ptp

import "testing"

func TestCodecRoundTrip(t *testing.T) {
	cases := []PropertyValue{
		NewInt8(-5),
		NewUint8(250),
		NewInt16(-1000),
		NewUint16(0xBEEF),
		NewInt32(-100000),
		NewUint32(0xDEADBEEF),
		NewInt64(-123456789012),
		NewUint64(0xCAFEBABEDEADBEEF),
		NewInt128(Int128{Low: 1, High: 2}),
		NewUint128(Uint128{Low: 3, High: 4}),
		NewString("hello PTP"),
		NewString(""),
	}

	for _, v := range cases {
		var buf Buffer
		if err := buf.WriteValue(v); err != nil {
			t.Fatalf("WriteValue(%v): %v", v, err)
		}
		c := NewCursor(buf.Bytes())
		got, err := c.ReadValue(v.Tag())
		if err != nil {
			t.Fatalf("ReadValue(%s): %v", v.Tag(), err)
		}
		if !got.Equal(v) {
			t.Errorf("round trip mismatch for %s: got %+v, want %+v", v.Tag(), got, v)
		}
	}
}

func TestStringEdgeCases(t *testing.T) {
	var buf Buffer
	if err := buf.WriteString(""); err != nil {
		t.Fatalf("WriteString(\"\"): %v", err)
	}
	if got, want := buf.Bytes(), []byte{0x00}; !bytesEqual(got, want) {
		t.Errorf("empty string encoded to %v, want %v", got, want)
	}

	c := NewCursor([]byte{0x00})
	s, err := c.ReadString()
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if s != "" {
		t.Errorf("decoding [0x00] yielded %q, want empty", s)
	}
}

func TestEndianness(t *testing.T) {
	var buf Buffer
	buf.WriteUint32(0x01020304)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	if !bytesEqual(buf.Bytes(), want) {
		t.Errorf("encode(u32 0x01020304) = % x, want % x", buf.Bytes(), want)
	}
}

func TestReadUint16Array(t *testing.T) {
	var buf Buffer
	buf.WriteUint16Array([]uint16{0x1001, 0x1002, 0x1003})
	c := NewCursor(buf.Bytes())
	got, err := c.ReadUint16Array()
	if err != nil {
		t.Fatalf("ReadUint16Array: %v", err)
	}
	want := []uint16{0x1001, 0x1002, 0x1003}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got 0x%04x, want 0x%04x", i, got[i], want[i])
		}
	}
}

func TestTruncatedReadFails(t *testing.T) {
	c := NewCursor([]byte{0x01})
	if _, err := c.ReadUint32(); err == nil {
		t.Error("expected truncated-read error, got nil")
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
