package adio

import (
	"strconv"
	"strings"

	"github.com/robotalks/adio.go/pkg/channels"
	"github.com/robotalks/adio.go/pkg/transport"
	"github.com/robotalks/adio.go/pkg/wire"
)

func validEncoderChannel(ch int) error {
	if ch < 0 || ch > channels.MaxEncoder {
		return &channels.RangeError{Value: ch, Max: channels.MaxEncoder}
	}
	return nil
}

// SetEncoderMode switches the selected channels (0-3) into quadrature
// encoder mode. The channels are first forced to input direction and
// fixed to plain GPIO, then the encoder mode frame is sent (composite,
// see StrictComposites).
func (d *Device) SetEncoderMode(sel channels.Selector) ([]transport.Reply, error) {
	list, err := sel.Normalize(channels.MaxEncoder)
	if err != nil {
		return nil, err
	}
	mask := byte(channels.Mask(list))
	return d.transactAll([]wire.Frame{
		{Code: 0x9, Sub: mask, Ext: 0x0, Data: uint16(mask)},
		{Code: 0xa, Sub: mask, Ext: 0x0, Data: 0x0000},
		{Code: 0xa, Sub: mask, Ext: 0x1, Data: 0x0000},
	})
}

// EncoderPresetHi sets the upper 16 bits of the preset register of the
// selected encoder channels. The sub field carries the channel index
// itself, not a mask; "all" expands to one frame per channel.
func (d *Device) EncoderPresetHi(sel channels.Selector, value uint16) ([]transport.Reply, error) {
	return d.encoderPerChannel(sel, 0x2, value)
}

// EncoderPresetLo sets the lower 16 bits of the preset register of the
// selected encoder channels.
func (d *Device) EncoderPresetLo(sel channels.Selector, value uint16) ([]transport.Reply, error) {
	return d.encoderPerChannel(sel, 0x3, value)
}

// EncoderPreset32 sets the full 32-bit preset of the selected encoder
// channels: all HI frames first, then all LO frames, one reply line per
// frame (composite, see StrictComposites).
func (d *Device) EncoderPreset32(sel channels.Selector, value uint32) ([]transport.Reply, error) {
	list, err := sel.Normalize(channels.MaxEncoder)
	if err != nil {
		return nil, err
	}
	frames := make([]wire.Frame, 0, 2*len(list))
	for _, ch := range list {
		frames = append(frames, wire.Frame{Code: 0xa, Sub: byte(ch), Ext: 0x2, Data: uint16(value >> 16)})
	}
	for _, ch := range list {
		frames = append(frames, wire.Frame{Code: 0xa, Sub: byte(ch), Ext: 0x3, Data: uint16(value)})
	}
	return d.transactAll(frames)
}

func (d *Device) encoderPerChannel(sel channels.Selector, ext byte, data uint16) ([]transport.Reply, error) {
	list, err := sel.Normalize(channels.MaxEncoder)
	if err != nil {
		return nil, err
	}
	frames := make([]wire.Frame, len(list))
	for i, ch := range list {
		frames[i] = wire.Frame{Code: 0xa, Sub: byte(ch), Ext: ext, Data: data}
	}
	return d.transactAll(frames)
}

// EncoderControl is the control word of an encoder channel.
//
// Reset and LoadPreset are single-shot pulses and mutually exclusive in
// one call. DirInvert is a level; leaving it nil keeps the direction bit
// clear, same as an explicit false.
type EncoderControl struct {
	DirInvert  *bool
	Reset      bool
	LoadPreset bool
}

// Control applies a control word to the selected encoder channels, one
// frame per channel.
func (d *Device) Control(sel channels.Selector, ctl EncoderControl) ([]transport.Reply, error) {
	if ctl.Reset && ctl.LoadPreset {
		return nil, &ArgError{Name: "ctl", Value: "Reset+LoadPreset", Want: "at most one pulse per call"}
	}
	var data uint16
	if ctl.DirInvert != nil && *ctl.DirInvert {
		data |= 1 << 0
	}
	if ctl.Reset {
		data |= 1 << 1
	}
	if ctl.LoadPreset {
		data |= 1 << 2
	}
	return d.encoderPerChannel(sel, 0x4, data)
}

// EncoderDirInvert sets or clears direction inversion.
func (d *Device) EncoderDirInvert(sel channels.Selector, invert bool) ([]transport.Reply, error) {
	return d.Control(sel, EncoderControl{DirInvert: &invert})
}

// EncoderCountReset pulses the count reset.
func (d *Device) EncoderCountReset(sel channels.Selector) ([]transport.Reply, error) {
	return d.Control(sel, EncoderControl{Reset: true})
}

// EncoderLoadPreset pulses the preset load.
func (d *Device) EncoderLoadPreset(sel channels.Selector) ([]transport.Reply, error) {
	return d.Control(sel, EncoderControl{LoadPreset: true})
}

// EncoderStatus is the best-effort parse of an encoder status reply.
//
// The reply is comma-separated text after a fixed prefix. Every field is
// individually optional: a field that could not be parsed stays at its
// zero value (Count nil, the flags empty). This is a degraded result,
// not an error.
type EncoderStatus struct {
	Channel  int
	Raw      string
	Count    *int64
	Dir      string
	Overflow string
	AtEnd    string
}

// EncoderStatus reads and parses the status of one encoder channel.
func (d *Device) EncoderStatus(ch int) (EncoderStatus, error) {
	if err := validEncoderChannel(ch); err != nil {
		return EncoderStatus{}, err
	}
	r, err := d.transact(wire.Frame{Code: 0xd, Sub: byte(ch), Ext: 0x1, Data: 0x0000})
	st := EncoderStatus{Channel: ch, Raw: r.Text()}
	if !r.Received() {
		st.Raw = ""
	}
	if err != nil {
		return st, err
	}
	parseEncoderStatus(&st)
	return st, nil
}

func parseEncoderStatus(st *EncoderStatus) {
	body := st.Raw
	if strings.HasPrefix(body, "*D") {
		body = body[2:]
	}
	var parts []string
	for _, p := range strings.Split(body, ",") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) >= 2 {
		pc := strings.TrimSpace(strings.ToUpper(parts[1]))
		pc = strings.Replace(pc, "H", "", -1)
		pc = strings.Replace(pc, "#", "", -1)
		base := 10
		if strings.ContainsAny(pc, "ABCDEF") {
			base = 16
		}
		if n, err := strconv.ParseInt(pc, base, 64); err == nil {
			st.Count = &n
		}
	}
	if len(parts) >= 3 {
		st.Dir = strings.TrimSpace(parts[2])
	}
	if len(parts) >= 4 {
		st.Overflow = strings.TrimSpace(parts[3])
	}
	if len(parts) >= 5 {
		st.AtEnd = strings.TrimRight(strings.TrimSpace(parts[4]), "#")
	}
}
