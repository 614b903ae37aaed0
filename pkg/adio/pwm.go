package adio

import (
	"math"

	"github.com/robotalks/adio.go/pkg/channels"
	"github.com/robotalks/adio.go/pkg/transport"
	"github.com/robotalks/adio.go/pkg/wire"
)

// PWM duty codes at the raw scale of 1024 steps.
const (
	// DutyAlwaysLow pins the output low.
	DutyAlwaysLow uint16 = 0x0000
	// DutyHalf is 50% duty. The device compares with <=, hence 0x01FF
	// rather than 0x0200.
	DutyHalf uint16 = 0x01ff
	// DutyAlwaysHigh pins the output high.
	DutyAlwaysHigh uint16 = 0x03ff
)

// pwmFrequency encodes a frequency into the dual-band wire value:
// 0..4095 is taken as Hz directly; whole kilohertz up to 97kHz encode as
// 0x8000 plus the kHz count.
func pwmFrequency(freqHz int) (uint16, error) {
	if freqHz >= 0 && freqHz <= 4095 {
		return uint16(freqHz), nil
	}
	if freqHz >= 0 && freqHz%1000 == 0 && freqHz/1000 <= 97 {
		return 0x8000 + uint16(freqHz/1000), nil
	}
	return 0, &ArgError{Name: "freqHz", Value: freqHz, Want: "0..4095Hz or whole kHz up to 97kHz"}
}

// SetPWMFrequency sets the PWM frequency of the selected channels, one
// frame per channel.
func (d *Device) SetPWMFrequency(sel channels.Selector, freqHz int) ([]transport.Reply, error) {
	list, err := sel.Normalize(channels.MaxGPIO)
	if err != nil {
		return nil, err
	}
	data, err := pwmFrequency(freqHz)
	if err != nil {
		return nil, err
	}
	frames := make([]wire.Frame, len(list))
	for i, ch := range list {
		frames[i] = wire.Frame{Code: 0xb, Sub: byte(ch), Ext: 0x0, Data: data}
	}
	return d.transactAll(frames)
}

// SetPWMDutyRaw sets the raw duty code of the selected channels:
// 0x0000 always low, 0x0001..0x03FE the on fraction over 1024 steps,
// 0x03FF always high.
func (d *Device) SetPWMDutyRaw(sel channels.Selector, code uint16) ([]transport.Reply, error) {
	if code > DutyAlwaysHigh {
		return nil, &ArgError{Name: "code", Value: int(code), Want: "0x0000..0x03FF"}
	}
	list, err := sel.Normalize(channels.MaxGPIO)
	if err != nil {
		return nil, err
	}
	frames := make([]wire.Frame, len(list))
	for i, ch := range list {
		frames[i] = wire.Frame{Code: 0xc, Sub: byte(ch), Ext: 0x0, Data: code}
	}
	return d.transactAll(frames)
}

// DutyCode converts a duty fraction in [0.0,1.0] to the raw code.
// 0.0 and 1.0 map to the pinned codes; everything else scales by 1024
// and clamps into 0x0001..0x03FE. A duty within 1/1024 of 0.5 snaps to
// DutyHalf, following the device's down-rounding comparison.
func DutyCode(duty float64) (uint16, error) {
	if duty < 0 || duty > 1 {
		return 0, &ArgError{Name: "duty", Value: duty, Want: "0.0..1.0"}
	}
	switch {
	case duty == 0:
		return DutyAlwaysLow, nil
	case duty == 1:
		return DutyAlwaysHigh, nil
	}
	if math.Abs(duty-0.5) < 1.0/1024 {
		return DutyHalf, nil
	}
	ticks := int(duty * 1024)
	if ticks < 1 {
		ticks = 1
	} else if ticks > 0x03fe {
		ticks = 0x03fe
	}
	return uint16(ticks), nil
}

// SetPWMDuty sets the duty fraction of the selected channels.
func (d *Device) SetPWMDuty(sel channels.Selector, duty float64) ([]transport.Reply, error) {
	code, err := DutyCode(duty)
	if err != nil {
		return nil, err
	}
	return d.SetPWMDutyRaw(sel, code)
}
