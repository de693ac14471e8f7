package ptp

import (
	"errors"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrTruncated is returned by Cursor's Read* methods when a read would
// pass the end of the underlying buffer. Callers that parse a larger
// structure (PropertyInfo, DeviceInfoModel) translate this into a
// Malformed *Error so the caller never has to know about the codec's
// own internal sentinel.
var ErrTruncated = errors.New("ptp: truncated buffer")

// ucs2LE is shared by every string decode/encode; constructing it once
// avoids repeated allocation in hot probe/getCurrent paths.
var ucs2LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Cursor decodes PTP wire values from a byte slice, advancing an
// internal read offset. All multi-byte values are little-endian, per
// the PTP 1.1 Still Image standard.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf for decoding starting at offset 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining reports how many unread bytes are left.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

func (c *Cursor) need(n int) error {
	if c.Remaining() < n {
		return ErrTruncated
	}
	return nil
}

func (c *Cursor) ReadInt8() (int8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := int8(c.buf[c.pos])
	c.pos++
	return v, nil
}

func (c *Cursor) ReadUint8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

func (c *Cursor) ReadUint16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := uint16(c.buf[c.pos]) | uint16(c.buf[c.pos+1])<<8
	c.pos += 2
	return v, nil
}

func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

func (c *Cursor) ReadUint32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := uint32(c.buf[c.pos]) | uint32(c.buf[c.pos+1])<<8 |
		uint32(c.buf[c.pos+2])<<16 | uint32(c.buf[c.pos+3])<<24
	c.pos += 4
	return v, nil
}

func (c *Cursor) ReadInt64() (int64, error) {
	v, err := c.ReadUint64()
	return int64(v), err
}

func (c *Cursor) ReadUint64() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(c.buf[c.pos+i]) << (8 * uint(i))
	}
	c.pos += 8
	return v, nil
}

func (c *Cursor) ReadInt128() (Int128, error) {
	low, err := c.ReadUint64()
	if err != nil {
		return Int128{}, err
	}
	high, err := c.ReadUint64()
	if err != nil {
		return Int128{}, err
	}
	return Int128{Low: low, High: high}, nil
}

func (c *Cursor) ReadUint128() (Uint128, error) {
	low, err := c.ReadUint64()
	if err != nil {
		return Uint128{}, err
	}
	high, err := c.ReadUint64()
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{Low: low, High: high}, nil
}

// ReadString decodes a PTP string: a 1-byte code-unit count (including
// the terminating NUL, if present), followed by that many UCS-2LE code
// units. The terminating NUL, if present, is stripped from the result.
func (c *Cursor) ReadString() (string, error) {
	n, err := c.ReadUint8()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	byteLen := int(n) * 2
	if err := c.need(byteLen); err != nil {
		return "", err
	}
	raw := c.buf[c.pos : c.pos+byteLen]
	c.pos += byteLen

	// Strip a trailing NUL code unit before decoding so it never
	// surfaces in the returned Go string.
	if len(raw) >= 2 && raw[len(raw)-2] == 0 && raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-2]
	}
	if len(raw) == 0 {
		return "", nil
	}

	out, _, err := transform.Bytes(ucs2LE.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReadUint16Array decodes a 4-byte element count followed by that many
// uint16 values, as used for the operation/event/property/format
// lists in GetDeviceInfo.
func (c *Cursor) ReadUint16Array() ([]uint16, error) {
	count, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	out := make([]uint16, 0, count)
	for i := uint32(0); i < count; i++ {
		v, err := c.ReadUint16()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Buffer accumulates encoded PTP wire values. Zero value is ready to
// use.
type Buffer struct {
	buf []byte
}

func (b *Buffer) Bytes() []byte { return b.buf }

func (b *Buffer) WriteInt8(v int8)   { b.buf = append(b.buf, byte(v)) }
func (b *Buffer) WriteUint8(v uint8) { b.buf = append(b.buf, v) }

func (b *Buffer) WriteInt16(v int16) { b.WriteUint16(uint16(v)) }
func (b *Buffer) WriteUint16(v uint16) {
	b.buf = append(b.buf, byte(v), byte(v>>8))
}

func (b *Buffer) WriteInt32(v int32) { b.WriteUint32(uint32(v)) }
func (b *Buffer) WriteUint32(v uint32) {
	b.buf = append(b.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func (b *Buffer) WriteInt64(v int64) { b.WriteUint64(uint64(v)) }
func (b *Buffer) WriteUint64(v uint64) {
	for i := 0; i < 8; i++ {
		b.buf = append(b.buf, byte(v>>(8*uint(i))))
	}
}

func (b *Buffer) WriteInt128(v Int128) {
	b.WriteUint64(v.Low)
	b.WriteUint64(v.High)
}

func (b *Buffer) WriteUint128(v Uint128) {
	b.WriteUint64(v.Low)
	b.WriteUint64(v.High)
}

// WriteString encodes s as UCS-2LE with a terminating NUL, preceded by
// a 1-byte code-unit count that includes that terminator. The empty
// string encodes as a single zero length byte with no data.
func (b *Buffer) WriteString(s string) error {
	if s == "" {
		b.buf = append(b.buf, 0)
		return nil
	}

	enc, _, err := transform.Bytes(ucs2LE.NewEncoder(), []byte(s))
	if err != nil {
		return err
	}
	units := len(enc)/2 + 1 // +1 for the terminating NUL unit
	if units > 0xFF {
		return errors.New("ptp: string too long to encode in a PTP string field")
	}
	b.buf = append(b.buf, byte(units))
	b.buf = append(b.buf, enc...)
	b.buf = append(b.buf, 0, 0) // terminating NUL code unit
	return nil
}

func (b *Buffer) WriteUint16Array(vals []uint16) {
	b.WriteUint32(uint32(len(vals)))
	for _, v := range vals {
		b.WriteUint16(v)
	}
}

// WriteValue encodes a PropertyValue according to its own tag. Used by
// Engine.SetValue to build the SetDevicePropValue data phase.
func (b *Buffer) WriteValue(v PropertyValue) error {
	switch v.Tag() {
	case TC_INT8:
		i, _ := v.Int8()
		b.WriteInt8(i)
	case TC_UINT8:
		i, _ := v.Uint8()
		b.WriteUint8(i)
	case TC_INT16:
		i, _ := v.Int16()
		b.WriteInt16(i)
	case TC_UINT16:
		i, _ := v.Uint16()
		b.WriteUint16(i)
	case TC_INT32:
		i, _ := v.Int32()
		b.WriteInt32(i)
	case TC_UINT32:
		i, _ := v.Uint32()
		b.WriteUint32(i)
	case TC_INT64:
		i, _ := v.Int64()
		b.WriteInt64(i)
	case TC_UINT64:
		i, _ := v.Uint64()
		b.WriteUint64(i)
	case TC_INT128:
		i, _ := v.Int128()
		b.WriteInt128(i)
	case TC_UINT128:
		i, _ := v.Uint128()
		b.WriteUint128(i)
	case TC_STRING:
		s, _ := v.StringValue()
		return b.WriteString(s)
	default:
		return &Error{Kind: Malformed, Message: "cannot encode NONE-tagged value"}
	}
	return nil
}

// ReadValue decodes a single PropertyValue of the given type from the
// cursor. TC_NONE and any type with no supported factory/current
// representation in a property descriptor (INT64/UINT64/INT128/UINT128)
// are callers' responsibility to special-case before invoking this for
// descriptor parsing; ReadValue itself decodes all types including
// those, since it is also used for plain GetDevicePropValue replies
// where these widths are uncommon but not categorically excluded.
func (c *Cursor) ReadValue(t TypeCode) (PropertyValue, error) {
	switch t {
	case TC_INT8:
		i, err := c.ReadInt8()
		return NewInt8(i), err
	case TC_UINT8:
		i, err := c.ReadUint8()
		return NewUint8(i), err
	case TC_INT16:
		i, err := c.ReadInt16()
		return NewInt16(i), err
	case TC_UINT16:
		i, err := c.ReadUint16()
		return NewUint16(i), err
	case TC_INT32:
		i, err := c.ReadInt32()
		return NewInt32(i), err
	case TC_UINT32:
		i, err := c.ReadUint32()
		return NewUint32(i), err
	case TC_INT64:
		i, err := c.ReadInt64()
		return NewInt64(i), err
	case TC_UINT64:
		i, err := c.ReadUint64()
		return NewUint64(i), err
	case TC_INT128:
		i, err := c.ReadInt128()
		return NewInt128(i), err
	case TC_UINT128:
		i, err := c.ReadUint128()
		return NewUint128(i), err
	case TC_STRING:
		s, err := c.ReadString()
		return NewString(s), err
	default:
		return PropertyValue{}, &Error{Kind: Malformed, Message: "unsupported type code in descriptor"}
	}
}
