package ptp

import (
	"errors"
	"testing"
)

func TestTagDiscipline(t *testing.T) {
	v := NewUint8(5)
	if _, err := v.Uint16(); err == nil {
		t.Fatal("expected TypeMismatch reading UINT8 value as UINT16")
	} else {
		var perr *Error
		if !errors.As(err, &perr) || perr.Kind != TypeMismatch {
			t.Errorf("expected *Error{Kind: TypeMismatch}, got %v", err)
		}
	}
}

func TestEqualityNoneAndCrossTag(t *testing.T) {
	var a, b PropertyValue
	if !a.Equal(b) {
		t.Error("NONE == NONE should be true")
	}

	u8 := NewUint8(5)
	u16 := NewUint16(5)
	if u8.Equal(u16) {
		t.Error("UINT8(5) should not equal UINT16(5) despite equal numeric value")
	}
}

func TestClear(t *testing.T) {
	v := NewString("x")
	v.Clear()
	if v.Tag() != TC_NONE {
		t.Errorf("Clear: tag = %s, want NONE", v.Tag())
	}
}

func TestAsU64RejectsStringAnd128Bit(t *testing.T) {
	cases := []PropertyValue{
		NewString("x"),
		NewInt128(Int128{}),
		NewUint128(Uint128{}),
	}
	for _, v := range cases {
		if _, err := v.AsU64(); err == nil {
			t.Errorf("AsU64() on %s: expected error, got nil", v.Tag())
		}
	}
}
