package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/malc0mn/ptpcore/ptp"
	"github.com/malc0mn/ptpcore/ptpfmt"
)

// command is one CLI subcommand: given the connected Engine and its
// remaining arguments, it returns the text to print.
type command func(e *ptp.Engine, args []string) string

func commandByName(n string) command {
	switch n {
	case "info":
		return cmdInfo
	case "getval":
		return cmdGetval
	case "setval":
		return cmdSetval
	case "enum":
		return cmdEnum
	case "opreq":
		return cmdOpreq
	case "capture", "shoot", "shutter", "snap":
		return cmdCapture
	case "battery":
		return cmdBattery
	default:
		return cmdUnknown
	}
}

func cmdUnknown(_ *ptp.Engine, _ []string) string {
	return "unknown command\n"
}

func cmdInfo(e *ptp.Engine, _ []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Standard version: %d\n", e.StandardVersion())
	fmt.Fprintf(&b, "Vendor extension: 0x%08x (raw 0x%08x)\n", e.VendorExtension(false), e.VendorExtension(true))
	fmt.Fprintf(&b, "Manufacturer: %s\n", e.Manufacturer())
	fmt.Fprintf(&b, "Model: %s\n", e.Model())
	fmt.Fprintf(&b, "Device version: %s\n", e.DeviceVersion())
	fmt.Fprintf(&b, "Serial: %s\n", e.Serial())
	fmt.Fprintf(&b, "Operations: %s\n", strings.Join(e.Operations(), ", "))
	fmt.Fprintf(&b, "Events: %s\n", strings.Join(e.Events(), ", "))
	fmt.Fprintf(&b, "Capture formats: %s\n", strings.Join(e.CaptureFormats(), ", "))
	fmt.Fprintf(&b, "Image formats: %s\n", strings.Join(e.ImageFormats(), ", "))
	return b.String()
}

func cmdGetval(e *ptp.Engine, args []string) string {
	if len(args) != 1 {
		return "usage: getval <propcode>\n"
	}
	code, err := parsePropCode(args[0])
	if err != nil {
		return err.Error() + "\n"
	}

	v, err := e.GetCurrent(code)
	if err != nil {
		return fmt.Sprintf("getval error: %s\n", err)
	}
	return ptpfmt.DevicePropValAsString(e.VendorExtension(false), code, v) + "\n"
}

func cmdSetval(e *ptp.Engine, args []string) string {
	if len(args) != 2 {
		return "usage: setval <propcode> <value>\n"
	}
	code, err := parsePropCode(args[0])
	if err != nil {
		return err.Error() + "\n"
	}

	if e.PropertyTypeCode(code) == ptp.TC_NONE {
		if err := e.Probe(code); err != nil {
			return fmt.Sprintf("setval error: %s\n", err)
		}
	}

	val, err := parseValueForType(e.PropertyTypeCode(code), args[1])
	if err != nil {
		return fmt.Sprintf("setval error: %s\n", err)
	}

	if err := e.SetValue(code, val); err != nil {
		return fmt.Sprintf("setval error: %s\n", err)
	}
	return "OK\n"
}

func cmdEnum(e *ptp.Engine, args []string) string {
	if len(args) != 1 {
		return "usage: enum <propcode>\n"
	}
	code, err := parsePropCode(args[0])
	if err != nil {
		return err.Error() + "\n"
	}

	if err := e.Probe(code); err != nil {
		return fmt.Sprintf("enum error: %s\n", err)
	}

	entries, idx := e.EnumTable(code)
	var b strings.Builder
	for i, entry := range entries {
		marker := "  "
		if i == idx {
			marker = "->"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, entry.Label)
	}
	return b.String()
}

func cmdOpreq(e *ptp.Engine, args []string) string {
	if len(args) < 1 {
		return "usage: opreq <opcode> [params...]\n"
	}
	code, err := ptpfmt.HexStringToUint64(args[0], 16)
	if err != nil {
		return fmt.Sprintf("opreq error: %s\n", err)
	}
	if !e.IsOperationSupported(uint16(code)) {
		return "opreq error: operation not supported\n"
	}
	return fmt.Sprintf("opreq: 0x%04x is supported by this device\n", code)
}

func cmdCapture(e *ptp.Engine, _ []string) string {
	if err := e.InitiateCapture(); err != nil {
		return fmt.Sprintf("capture error: %s\n", err)
	}
	return "Image captured, check the camera\n"
}

func cmdBattery(e *ptp.Engine, _ []string) string {
	if err := e.Probe(uint16(ptp.DPC_BatteryLevel)); err != nil {
		return fmt.Sprintf("battery error: %s\n", err)
	}
	pct := e.BatteryPercent()
	if pct < 0 {
		return "battery: not probed\n"
	}
	return fmt.Sprintf("battery: %.1f%%\n", pct)
}

func parsePropCode(s string) (uint16, error) {
	v, err := ptpfmt.HexStringToUint64(s, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid property code %q: %w", s, err)
	}
	return uint16(v), nil
}

func parseValueForType(t ptp.TypeCode, s string) (ptp.PropertyValue, error) {
	switch t {
	case ptp.TC_INT8:
		n, err := strconv.ParseInt(s, 0, 8)
		return ptp.NewInt8(int8(n)), err
	case ptp.TC_UINT8:
		n, err := strconv.ParseUint(s, 0, 8)
		return ptp.NewUint8(uint8(n)), err
	case ptp.TC_INT16:
		n, err := strconv.ParseInt(s, 0, 16)
		return ptp.NewInt16(int16(n)), err
	case ptp.TC_UINT16:
		n, err := strconv.ParseUint(s, 0, 16)
		return ptp.NewUint16(uint16(n)), err
	case ptp.TC_INT32:
		n, err := strconv.ParseInt(s, 0, 32)
		return ptp.NewInt32(int32(n)), err
	case ptp.TC_UINT32:
		n, err := strconv.ParseUint(s, 0, 32)
		return ptp.NewUint32(uint32(n)), err
	case ptp.TC_STRING:
		return ptp.NewString(s), nil
	default:
		return ptp.PropertyValue{}, fmt.Errorf("cannot set a property of type %s from the command line", t)
	}
}
