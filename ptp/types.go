package ptp

// TypeCode identifies the wire representation of a PTP property or
// argument value. The numeric values are wire-normative: they are the
// DataTypeCode values defined by the PTP 1.1 Still Image standard and
// must not be renumbered.
type TypeCode uint16

const (
	TC_NONE    TypeCode = 0x0000
	TC_INT8    TypeCode = 0x0001
	TC_UINT8   TypeCode = 0x0002
	TC_INT16   TypeCode = 0x0003
	TC_UINT16  TypeCode = 0x0004
	TC_INT32   TypeCode = 0x0005
	TC_UINT32  TypeCode = 0x0006
	TC_INT64   TypeCode = 0x0007
	TC_UINT64  TypeCode = 0x0008
	TC_INT128  TypeCode = 0x0009
	TC_UINT128 TypeCode = 0x000A
	TC_STRING  TypeCode = 0xFFFF
)

func (t TypeCode) String() string {
	switch t {
	case TC_NONE:
		return "NONE"
	case TC_INT8:
		return "INT8"
	case TC_UINT8:
		return "UINT8"
	case TC_INT16:
		return "INT16"
	case TC_UINT16:
		return "UINT16"
	case TC_INT32:
		return "INT32"
	case TC_UINT32:
		return "UINT32"
	case TC_INT64:
		return "INT64"
	case TC_UINT64:
		return "UINT64"
	case TC_INT128:
		return "INT128"
	case TC_UINT128:
		return "UINT128"
	case TC_STRING:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

// FormCode identifies the shape of a property's allowed-value
// description in a GetDevicePropDesc reply.
type FormCode uint8

const (
	FC_NONE  FormCode = 0x00
	FC_RANGE FormCode = 0x01
	FC_ENUM  FormCode = 0x02
)

func (f FormCode) String() string {
	switch f {
	case FC_NONE:
		return "NONE"
	case FC_RANGE:
		return "RANGE"
	case FC_ENUM:
		return "ENUM"
	default:
		return "UNKNOWN"
	}
}

// Int128 and Uint128 model the 128-bit integer wire layout. No
// standard PTP property populates these today; Cursor and Buffer
// decode and encode them as plain values, while parsePropertyDesc
// rejects a descriptor of either type as Malformed.
type Int128 struct {
	Low  uint64
	High uint64
}

type Uint128 struct {
	Low  uint64
	High uint64
}
