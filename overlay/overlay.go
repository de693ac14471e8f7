// Package overlay renders a subset of device properties as a
// single-line text status bar, mirroring what a camera's optical
// viewfinder overlay shows: battery, exposure bias, exposure program
// mode, ISO and F-Number.
//
// Each property is dispatched to a Widget keyed by its
// ptp.DevicePropCode; a Widget's Draw function turns the property's
// raw value into a short label rather than painting onto a
// framebuffer, since this package has no display surface to draw on.
package overlay

import (
	"fmt"
	"strings"

	"github.com/malc0mn/ptpcore/ptp"
	"github.com/malc0mn/ptpcore/ptpfmt"
)

// Widget renders one property's current value as a short label.
type Widget struct {
	Draw func(val ptp.PropertyValue) string
}

// StatusBar is an ordered set of widgets keyed by the property code
// they render.
type StatusBar struct {
	order   []uint16
	widgets map[uint16]*Widget
}

// NewFujiStyleStatusBar returns a StatusBar wired the way a Fujifilm
// optical viewfinder overlay is laid out: battery level, exposure bias
// compensation, exposure program mode, exposure index (ISO) and
// F-Number.
func NewFujiStyleStatusBar() *StatusBar {
	s := &StatusBar{widgets: make(map[uint16]*Widget)}
	s.add(uint16(ptp.DPC_BatteryLevel), batteryWidget)
	s.add(uint16(ptp.DPC_ExposureBiasCompensation), exposureBiasWidget)
	s.add(uint16(ptp.DPC_ExposureProgramMode), exposureProgramModeWidget)
	s.add(uint16(ptp.DPC_ExposureIndex), isoWidget)
	s.add(uint16(ptp.DPC_FNumber), fNumberWidget)
	return s
}

func (s *StatusBar) add(code uint16, draw func(ptp.PropertyValue) string) {
	s.order = append(s.order, code)
	s.widgets[code] = &Widget{Draw: draw}
}

// valueSource is the part of *ptp.Engine that Render needs.
type valueSource interface {
	GetCurrent(code uint16) (ptp.PropertyValue, error)
}

// Render produces a single-line status string by calling e for the
// current value of each wired property, in registration order. A
// property whose GetCurrent call fails (unknown to the device, or the
// probe or value fetch fails) renders as "--".
func (s *StatusBar) Render(e valueSource) string {
	parts := make([]string, 0, len(s.order))
	for _, code := range s.order {
		w := s.widgets[code]
		v, err := e.GetCurrent(code)
		if err != nil {
			parts = append(parts, "--")
			continue
		}
		parts = append(parts, w.Draw(v))
	}
	return strings.Join(parts, " | ")
}

func batteryWidget(val ptp.PropertyValue) string {
	u, err := val.Uint8()
	if err != nil {
		return "BAT?"
	}
	switch {
	case u >= 67:
		return "BAT"
	case u >= 34:
		return "bCT"
	default:
		return "baU"
	}
}

func exposureBiasWidget(val ptp.PropertyValue) string {
	i, err := val.AsI64()
	if err != nil {
		return "EV?"
	}
	// Units are thousandths of a stop (APEX).
	return fmt.Sprintf("EV%+.1f", float64(i)/1000.0)
}

func exposureProgramModeWidget(val ptp.PropertyValue) string {
	u, err := val.AsU64()
	if err != nil {
		return "?"
	}
	switch u {
	case 0x0001:
		return "M"
	case 0x0002:
		return "P"
	case 0x0003:
		return "A"
	case 0x0004:
		return "S"
	default:
		return "?"
	}
}

func isoWidget(val ptp.PropertyValue) string {
	u, err := val.Uint16()
	if err != nil {
		return "ISO?"
	}
	return "ISO:" + ptpfmt.ExposureIndexAsString(u)
}

func fNumberWidget(val ptp.PropertyValue) string {
	u, err := val.Uint16()
	if err != nil {
		return "f/?"
	}
	return ptpfmt.FNumberAsString(u)
}
