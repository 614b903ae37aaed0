package adio

import (
	"github.com/robotalks/adio.go/pkg/channels"
	"github.com/robotalks/adio.go/pkg/transport"
	"github.com/robotalks/adio.go/pkg/wire"
)

func validDACChannel(ch int) error {
	if ch < 0 || ch > channels.MaxDAC {
		return &channels.RangeError{Value: ch, Max: channels.MaxDAC}
	}
	return nil
}

// SetLDAC drives the LDAC latch signal level, 0 or 1. Masked channels are
// excluded from the simultaneous output update the latch triggers.
func (d *Device) SetLDAC(level int) (transport.Reply, error) {
	if level != 0 && level != 1 {
		return transport.Reply{}, &ArgError{Name: "level", Value: level, Want: "0 or 1"}
	}
	return d.transact(wire.Frame{Code: 0x7, Sub: 0x00, Ext: 0x0, Data: uint16(level)})
}

// SetLDACMask sets the 8-bit LDAC mask. A set bit excludes the channel
// from the simultaneous update.
func (d *Device) SetLDACMask(mask byte) (transport.Reply, error) {
	return d.transact(wire.Frame{Code: 0x8, Sub: 0x00, Ext: 0x0, Data: uint16(mask)})
}

// MaskLDACChannels builds the LDAC mask from a channel selector (bound
// 0-7) and sets it.
func (d *Device) MaskLDACChannels(sel channels.Selector) (transport.Reply, error) {
	list, err := sel.Normalize(channels.MaxGPIO)
	if err != nil {
		return transport.Reply{}, err
	}
	return d.SetLDACMask(byte(channels.Mask(list)))
}

// DACSet stores an output value on a DAC channel without updating the
// output; the update happens on the next latch.
func (d *Device) DACSet(ch int, value uint16) (transport.Reply, error) {
	if err := validDACChannel(ch); err != nil {
		return transport.Reply{}, err
	}
	return d.transact(wire.Frame{Code: 0x6, Sub: byte(ch), Ext: 0x1, Data: value})
}

// DACOut sets and immediately outputs a value on a DAC channel.
func (d *Device) DACOut(ch int, value uint16) (transport.Reply, error) {
	if err := validDACChannel(ch); err != nil {
		return transport.Reply{}, err
	}
	return d.transact(wire.Frame{Code: 0x6, Sub: byte(ch), Ext: 0x3, Data: value})
}

// Gain is the opamp gain code of an ADC input channel.
type Gain int

// Gain codes with their input ranges.
const (
	Gain10V     Gain = 0 // ±10V, x1/2
	Gain5V      Gain = 1 // ±5V, x1
	Gain1V25    Gain = 2 // ±1.25V, x4
	Gain0V3125  Gain = 3 // ±0.3125V, x16
	Gain0V12625 Gain = 4 // ±0.12625V, x32
)

var gainRanges = map[Gain]string{
	Gain10V:     "±10V",
	Gain5V:      "±5V",
	Gain1V25:    "±1.25V",
	Gain0V3125:  "±0.3125V",
	Gain0V12625: "±0.12625V",
}

var gainMultipliers = map[Gain]float64{
	Gain10V:     0.5,
	Gain5V:      1,
	Gain1V25:    4,
	Gain0V3125:  16,
	Gain0V12625: 32,
}

// String returns the input range of the gain code.
func (g Gain) String() string {
	return gainRanges[g]
}

// Multiplier returns the amplification factor, usable as the gain factor
// of Voltage.
func (g Gain) Multiplier() float64 {
	return gainMultipliers[g]
}

// Valid checks the code is one the device accepts.
func (g Gain) Valid() bool {
	_, ok := gainRanges[g]
	return ok
}

// SetGain sets the opamp gain of an ADC input channel.
func (d *Device) SetGain(ch int, gain Gain) (transport.Reply, error) {
	if err := validADCChannel(ch); err != nil {
		return transport.Reply{}, err
	}
	if !gain.Valid() {
		return transport.Reply{}, &ArgError{Name: "gain", Value: int(gain), Want: "0..4"}
	}
	return d.transact(wire.Frame{Code: 0x5, Sub: byte(ch), Ext: 0x0, Data: uint16(gain)})
}
