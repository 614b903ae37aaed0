package adio

import (
	"strings"

	"github.com/robotalks/adio.go/pkg/channels"
	"github.com/robotalks/adio.go/pkg/transport"
	"github.com/robotalks/adio.go/pkg/wire"
)

// SetDirection configures GPIO pin directions. Only the channels selected
// by active are affected; of those, the ones selected by input become
// inputs and the rest outputs.
func (d *Device) SetDirection(active, input channels.Selector) (transport.Reply, error) {
	act, err := active.Normalize(channels.MaxGPIO)
	if err != nil {
		return transport.Reply{}, err
	}
	ins, err := input.Normalize(channels.MaxGPIO)
	if err != nil {
		return transport.Reply{}, err
	}
	return d.transact(wire.Frame{
		Code: 0x9,
		Sub:  byte(channels.Mask(act)),
		Ext:  0x0,
		Data: uint16(channels.Mask(ins)),
	})
}

// SetPinMode switches the selected channels between GPIO and PWM
// operation. Channels selected by pwm run PWM, the remaining active
// channels plain GPIO; pwm channels outside the active set are ignored.
// The active channels are first forced to output direction, then the mode
// frame is sent (composite, see StrictComposites).
func (d *Device) SetPinMode(active, pwm channels.Selector) ([]transport.Reply, error) {
	act, err := active.Normalize(channels.MaxGPIO)
	if err != nil {
		return nil, err
	}
	pwms, err := pwm.Normalize(channels.MaxGPIO)
	if err != nil {
		return nil, err
	}
	actMask := channels.Mask(act)
	pwmMask := channels.Mask(pwms) & actMask
	return d.transactAll([]wire.Frame{
		{Code: 0x9, Sub: byte(actMask), Ext: 0x0, Data: 0x0000},
		{Code: 0xa, Sub: byte(actMask), Ext: 0x0, Data: uint16(pwmMask)},
	})
}

// GpioRead is the outcome of a GPIO read.
type GpioRead struct {
	// Frame is the command text that was sent.
	Frame string
	// Value is the parsed 8-bit port value, or -1 when the reply could
	// not be parsed.
	Value int
	// Raw is the reply bytes as received.
	Raw []byte
}

// Unknown indicates the reply carried no parseable value.
func (g GpioRead) Unknown() bool {
	return g.Value < 0
}

// ReadGPIO reads the GPIO port. The expected reply is *D0000XX# with XX
// the port value; parsing scans for the last two hex characters of the
// reply text and degrades to the unknown sentinel instead of failing.
func (d *Device) ReadGPIO() (GpioRead, error) {
	f := wire.Frame{Code: 0xd, Sub: 0x00, Ext: 0x0, Data: 0x0000}
	res := GpioRead{Frame: f.String(), Value: -1}
	r, err := d.transact(f)
	res.Raw = r.Raw
	if err != nil {
		return res, err
	}
	if r.Received() {
		res.Value = parsePortValue(string(r.Raw))
	}
	return res, nil
}

// parsePortValue extracts the last two hex characters of the reply text.
// Fewer than two hex characters yields -1.
func parsePortValue(text string) int {
	text = strings.ToUpper(text)
	var hex []byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') {
			hex = append(hex, c)
		}
	}
	if len(hex) < 2 {
		return -1
	}
	value := 0
	for _, c := range hex[len(hex)-2:] {
		value <<= 4
		if c <= '9' {
			value |= int(c - '0')
		} else {
			value |= int(c-'A') + 10
		}
	}
	return value
}

// WriteGPIO outputs an 8-bit value on the GPIO port. Pins configured as
// inputs are unaffected.
func (d *Device) WriteGPIO(value byte) (transport.Reply, error) {
	return d.transact(wire.Frame{Code: 0xe, Sub: 0x00, Ext: 0x0, Data: uint16(value)})
}

// WriteGPIOChannels drives the selected channels high and the rest low.
func (d *Device) WriteGPIOChannels(high channels.Selector) (transport.Reply, error) {
	list, err := high.Normalize(channels.MaxGPIO)
	if err != nil {
		return transport.Reply{}, err
	}
	return d.WriteGPIO(byte(channels.Mask(list)))
}
