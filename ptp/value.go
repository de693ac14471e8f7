package ptp

import "fmt"

// PropertyValue is a tagged union over every PTP scalar and string
// value type. The zero value is the NONE variant. Assignment through
// one of the setters always replaces the tag; there is no implicit
// numeric widening between variants.
type PropertyValue struct {
	tag TypeCode

	i8   int8
	u8   uint8
	i16  int16
	u16  uint16
	i32  int32
	u32  uint32
	i64  int64
	u64  uint64
	i128 Int128
	u128 Uint128
	str  string
}

// Tag reports the value's current TypeCode.
func (v PropertyValue) Tag() TypeCode {
	return v.tag
}

// Clear resets the value to the NONE variant.
func (v *PropertyValue) Clear() {
	*v = PropertyValue{}
}

func NewInt8(val int8) PropertyValue     { return PropertyValue{tag: TC_INT8, i8: val} }
func NewUint8(val uint8) PropertyValue   { return PropertyValue{tag: TC_UINT8, u8: val} }
func NewInt16(val int16) PropertyValue   { return PropertyValue{tag: TC_INT16, i16: val} }
func NewUint16(val uint16) PropertyValue { return PropertyValue{tag: TC_UINT16, u16: val} }
func NewInt32(val int32) PropertyValue   { return PropertyValue{tag: TC_INT32, i32: val} }
func NewUint32(val uint32) PropertyValue { return PropertyValue{tag: TC_UINT32, u32: val} }
func NewInt64(val int64) PropertyValue   { return PropertyValue{tag: TC_INT64, i64: val} }
func NewUint64(val uint64) PropertyValue { return PropertyValue{tag: TC_UINT64, u64: val} }
func NewInt128(val Int128) PropertyValue { return PropertyValue{tag: TC_INT128, i128: val} }
func NewUint128(val Uint128) PropertyValue {
	return PropertyValue{tag: TC_UINT128, u128: val}
}
func NewString(val string) PropertyValue { return PropertyValue{tag: TC_STRING, str: val} }

func (v *PropertyValue) SetInt8(val int8)       { *v = NewInt8(val) }
func (v *PropertyValue) SetUint8(val uint8)     { *v = NewUint8(val) }
func (v *PropertyValue) SetInt16(val int16)     { *v = NewInt16(val) }
func (v *PropertyValue) SetUint16(val uint16)   { *v = NewUint16(val) }
func (v *PropertyValue) SetInt32(val int32)     { *v = NewInt32(val) }
func (v *PropertyValue) SetUint32(val uint32)   { *v = NewUint32(val) }
func (v *PropertyValue) SetInt64(val int64)     { *v = NewInt64(val) }
func (v *PropertyValue) SetUint64(val uint64)   { *v = NewUint64(val) }
func (v *PropertyValue) SetInt128(val Int128)   { *v = NewInt128(val) }
func (v *PropertyValue) SetUint128(val Uint128) { *v = NewUint128(val) }
func (v *PropertyValue) SetString(val string)   { *v = NewString(val) }

// Int8 fails with TypeMismatch unless the current tag is exactly INT8.
func (v PropertyValue) Int8() (int8, error) {
	if v.tag != TC_INT8 {
		return 0, newTypeMismatch(TC_INT8, v.tag)
	}
	return v.i8, nil
}

func (v PropertyValue) Uint8() (uint8, error) {
	if v.tag != TC_UINT8 {
		return 0, newTypeMismatch(TC_UINT8, v.tag)
	}
	return v.u8, nil
}

func (v PropertyValue) Int16() (int16, error) {
	if v.tag != TC_INT16 {
		return 0, newTypeMismatch(TC_INT16, v.tag)
	}
	return v.i16, nil
}

func (v PropertyValue) Uint16() (uint16, error) {
	if v.tag != TC_UINT16 {
		return 0, newTypeMismatch(TC_UINT16, v.tag)
	}
	return v.u16, nil
}

func (v PropertyValue) Int32() (int32, error) {
	if v.tag != TC_INT32 {
		return 0, newTypeMismatch(TC_INT32, v.tag)
	}
	return v.i32, nil
}

func (v PropertyValue) Uint32() (uint32, error) {
	if v.tag != TC_UINT32 {
		return 0, newTypeMismatch(TC_UINT32, v.tag)
	}
	return v.u32, nil
}

func (v PropertyValue) Int64() (int64, error) {
	if v.tag != TC_INT64 {
		return 0, newTypeMismatch(TC_INT64, v.tag)
	}
	return v.i64, nil
}

func (v PropertyValue) Uint64() (uint64, error) {
	if v.tag != TC_UINT64 {
		return 0, newTypeMismatch(TC_UINT64, v.tag)
	}
	return v.u64, nil
}

func (v PropertyValue) Int128() (Int128, error) {
	if v.tag != TC_INT128 {
		return Int128{}, newTypeMismatch(TC_INT128, v.tag)
	}
	return v.i128, nil
}

func (v PropertyValue) Uint128() (Uint128, error) {
	if v.tag != TC_UINT128 {
		return Uint128{}, newTypeMismatch(TC_UINT128, v.tag)
	}
	return v.u128, nil
}

// StringValue returns the STRING variant's value. Named StringValue
// rather than String so PropertyValue can still satisfy fmt.Stringer
// with a human-readable debug form (see String below).
func (v PropertyValue) StringValue() (string, error) {
	if v.tag != TC_STRING {
		return "", newTypeMismatch(TC_STRING, v.tag)
	}
	return v.str, nil
}

// String renders v for logging and debugging: its tag and underlying
// value. It never fails, unlike the typed accessors.
func (v PropertyValue) String() string {
	switch v.tag {
	case TC_NONE:
		return "NONE"
	case TC_INT8:
		return fmt.Sprintf("INT8(%d)", v.i8)
	case TC_UINT8:
		return fmt.Sprintf("UINT8(%d)", v.u8)
	case TC_INT16:
		return fmt.Sprintf("INT16(%d)", v.i16)
	case TC_UINT16:
		return fmt.Sprintf("UINT16(%d)", v.u16)
	case TC_INT32:
		return fmt.Sprintf("INT32(%d)", v.i32)
	case TC_UINT32:
		return fmt.Sprintf("UINT32(%d)", v.u32)
	case TC_INT64:
		return fmt.Sprintf("INT64(%d)", v.i64)
	case TC_UINT64:
		return fmt.Sprintf("UINT64(%d)", v.u64)
	case TC_INT128:
		return fmt.Sprintf("INT128(%d:%d)", v.i128.High, v.i128.Low)
	case TC_UINT128:
		return fmt.Sprintf("UINT128(%d:%d)", v.u128.High, v.u128.Low)
	case TC_STRING:
		return fmt.Sprintf("STRING(%q)", v.str)
	default:
		return fmt.Sprintf("UNKNOWN(0x%04x)", uint16(v.tag))
	}
}

// AsU64 is a convenience used by callers that want a uniform numeric
// view of any integer variant (e.g. battery-percent math, enum-table
// rendering). It fails for STRING and the 128-bit variants, which have
// no lossless uint64 projection guaranteed.
func (v PropertyValue) AsU64() (uint64, error) {
	switch v.tag {
	case TC_INT8:
		return uint64(v.i8), nil
	case TC_UINT8:
		return uint64(v.u8), nil
	case TC_INT16:
		return uint64(v.i16), nil
	case TC_UINT16:
		return uint64(v.u16), nil
	case TC_INT32:
		return uint64(v.i32), nil
	case TC_UINT32:
		return uint64(v.u32), nil
	case TC_INT64:
		return uint64(v.i64), nil
	case TC_UINT64:
		return v.u64, nil
	default:
		return 0, &Error{Kind: TypeMismatch, Message: "no numeric projection for " + v.tag.String()}
	}
}

// AsI64 mirrors AsU64 but sign-extends signed variants.
func (v PropertyValue) AsI64() (int64, error) {
	switch v.tag {
	case TC_INT8:
		return int64(v.i8), nil
	case TC_UINT8:
		return int64(v.u8), nil
	case TC_INT16:
		return int64(v.i16), nil
	case TC_UINT16:
		return int64(v.u16), nil
	case TC_INT32:
		return int64(v.i32), nil
	case TC_UINT32:
		return int64(v.u32), nil
	case TC_INT64:
		return v.i64, nil
	case TC_UINT64:
		return int64(v.u64), nil
	default:
		return 0, &Error{Kind: TypeMismatch, Message: "no numeric projection for " + v.tag.String()}
	}
}

// Equal defines equality only between values of identical tag.
// NONE == NONE is true. Numerically-equal values of different tags
// (e.g. UINT8(5) and UINT16(5)) are never equal.
func (v PropertyValue) Equal(other PropertyValue) bool {
	if v.tag != other.tag {
		return false
	}
	switch v.tag {
	case TC_NONE:
		return true
	case TC_INT8:
		return v.i8 == other.i8
	case TC_UINT8:
		return v.u8 == other.u8
	case TC_INT16:
		return v.i16 == other.i16
	case TC_UINT16:
		return v.u16 == other.u16
	case TC_INT32:
		return v.i32 == other.i32
	case TC_UINT32:
		return v.u32 == other.u32
	case TC_INT64:
		return v.i64 == other.i64
	case TC_UINT64:
		return v.u64 == other.u64
	case TC_INT128:
		return v.i128 == other.i128
	case TC_UINT128:
		return v.u128 == other.u128
	case TC_STRING:
		return v.str == other.str
	default:
		return false
	}
}
