package ptp

// GetSetFlag mirrors the single byte following a property's data type
// in a GetDevicePropDesc reply. Any value other than 2 is treated as
// get-only.
type GetSetFlag uint8

const (
	GetOnly    GetSetFlag = 1
	GetAndSet  GetSetFlag = 2
)

// Settable reports whether the flag grants write access. Values other
// than GetAndSet (including reserved/unknown bytes) are get-only.
func (f GetSetFlag) Settable() bool {
	return f == GetAndSet
}

// PropertyInfo is the per-property descriptor cached by Engine. Before
// a property has been probed, TypeCode is TC_NONE and Factory/Current
// are the zero PropertyValue.
type PropertyInfo struct {
	TypeCode   TypeCode
	GetSet     GetSetFlag
	Form       FormCode
	Factory    PropertyValue
	Current    PropertyValue
	// Range holds [min, max, step] when Form == FC_RANGE, or the
	// ordered list of allowed values when Form == FC_ENUM, in the
	// order received from the device. Index semantics over Range are
	// only meaningful for FC_ENUM.
	Range []PropertyValue
}

// Probed reports whether GetDevicePropDesc has ever been issued
// successfully for this property.
func (p PropertyInfo) Probed() bool {
	return p.TypeCode != TC_NONE
}

// parsePropertyDesc decodes the body of a GetDevicePropDesc reply,
// starting at the property code field. Layout:
//
//	u16 propCode | u16 dataType | u8 getSetFlag |
//	<factory:value> | <current:value> | u8 formFlag | <form body>
func parsePropertyDesc(c *Cursor) (uint16, PropertyInfo, error) {
	var info PropertyInfo

	code, err := c.ReadUint16()
	if err != nil {
		return 0, info, err
	}
	typ, err := c.ReadUint16()
	if err != nil {
		return 0, info, err
	}
	info.TypeCode = TypeCode(typ)

	gs, err := c.ReadUint8()
	if err != nil {
		return 0, info, err
	}
	info.GetSet = GetSetFlag(gs)

	// INT64/UINT64/INT128/UINT128 are never populated for factory and
	// current: no standard PTP property uses these widths here, so a
	// descriptor that claims one is rejected as Malformed up front
	// instead of being parsed through its factory/current/form body.
	switch info.TypeCode {
	case TC_INT64, TC_UINT64, TC_INT128, TC_UINT128:
		return code, info, &Error{Kind: Malformed, Message: "descriptor uses unsupported 64/128-bit factory/current sub-type"}
	case TC_NONE:
		// Nothing to decode for factory/current.
	default:
		factory, err := c.ReadValue(info.TypeCode)
		if err != nil {
			return code, info, err
		}
		current, err := c.ReadValue(info.TypeCode)
		if err != nil {
			return code, info, err
		}
		info.Factory = factory
		info.Current = current
	}

	form, err := c.ReadUint8()
	if err != nil {
		return code, info, err
	}
	info.Form = FormCode(form)

	switch info.Form {
	case FC_NONE:
		// no form body
	case FC_RANGE:
		info.Range = make([]PropertyValue, 3)
		for i := range info.Range {
			v, err := c.ReadValue(info.TypeCode)
			if err != nil {
				return code, info, err
			}
			info.Range[i] = v
		}
	case FC_ENUM:
		count, err := c.ReadUint16()
		if err != nil {
			return code, info, err
		}
		info.Range = make([]PropertyValue, count)
		for i := range info.Range {
			v, err := c.ReadValue(info.TypeCode)
			if err != nil {
				return code, info, err
			}
			info.Range[i] = v
		}
	default:
		return code, info, &Error{Kind: Malformed, Message: "unknown form flag"}
	}

	return code, info, nil
}
