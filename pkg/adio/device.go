package adio

import (
	"errors"
	"fmt"

	"github.com/robotalks/adio.go/pkg/run"
	"github.com/robotalks/adio.go/pkg/transport"
	"github.com/robotalks/adio.go/pkg/wire"
)

// ArgError reports a command argument out of contract. It is raised
// before any byte is sent.
type ArgError struct {
	Name  string
	Value interface{}
	Want  string
}

// Error implements error.
func (e *ArgError) Error() string {
	return fmt.Sprintf("%s %v: want %s", e.Name, e.Value, e.Want)
}

// ErrNoReply indicates an interior step of a composite operation received
// no reply while StrictComposites is enabled.
var ErrNoReply = errors.New("no reply")

// Device is one ADio device behind a transport session.
//
// Composite operations (encoder 32-bit preset, PWM mode setup, encoder
// mode setup) issue multiple transactions in strict sequence. By default
// the remaining frames are still attempted when an interior transaction
// fails or gets no reply. Setting StrictComposites aborts a composite at
// the first transport error or missing reply instead; this is a
// deliberate deviation from the device's historical best-effort behavior
// and is opt-in only.
type Device struct {
	Session          *transport.Session
	StrictComposites bool
}

// New creates a device over a session.
func New(s *transport.Session) *Device {
	return &Device{Session: s}
}

// transact runs one standard transaction.
func (d *Device) transact(f wire.Frame) (transport.Reply, error) {
	return d.Session.Transact(f)
}

// transactAll runs a frame sequence under the composite policy.
func (d *Device) transactAll(frames []wire.Frame) ([]transport.Reply, error) {
	var errs run.AggregatedError
	replies := make([]transport.Reply, 0, len(frames))
	for _, f := range frames {
		r, err := d.Session.Transact(f)
		replies = append(replies, r)
		if err != nil {
			if d.StrictComposites {
				return replies, err
			}
			errs.Add(err)
			continue
		}
		if d.StrictComposites && !r.Received() {
			return replies, ErrNoReply
		}
	}
	return replies, errs.Aggregate()
}

// ResetMode selects what a reset affects.
type ResetMode int

// Reset modes.
const (
	// ResetAll resets every device setting.
	ResetAll ResetMode = iota
	// ResetADCTransmit resets only the ADC transmit path.
	ResetADCTransmit
)

// Reset issues a device reset.
func (d *Device) Reset(mode ResetMode) (transport.Reply, error) {
	var data uint16
	switch mode {
	case ResetAll:
		data = 0x0000
	case ResetADCTransmit:
		data = 0x0001
	default:
		return transport.Reply{}, &ArgError{Name: "mode", Value: int(mode), Want: "ResetAll or ResetADCTransmit"}
	}
	return d.transact(wire.Frame{Code: 0xf, Sub: 0x00, Ext: 0x0, Data: data})
}

// ResetAllSettings resets every device setting.
func (d *Device) ResetAllSettings() (transport.Reply, error) {
	return d.Reset(ResetAll)
}

// ResetADCTx resets only the ADC transmit path.
func (d *Device) ResetADCTx() (transport.Reply, error) {
	return d.Reset(ResetADCTransmit)
}

// FlushInput drains and discards stale received bytes with default
// settle timing, returning the discarded text. Useful before starting a
// command sequence on a port with unconsumed device output.
func (d *Device) FlushInput() (string, error) {
	return d.Session.Flush(transport.DefaultFlushWait,
		transport.DefaultFlushStableCount, transport.DefaultFlushMaxAttempts)
}
