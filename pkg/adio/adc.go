package adio

import (
	"github.com/robotalks/adio.go/pkg/channels"
	"github.com/robotalks/adio.go/pkg/transport"
	"github.com/robotalks/adio.go/pkg/wire"
)

// MaxChunkSize is the largest ADC chunk size in samples.
const MaxChunkSize = 0x07ff

// MaxChunkCount is the largest number of chunks per accumulation.
const MaxChunkCount = 0x10000

func validADCChannel(ch int) error {
	if ch < 0 || ch > channels.MaxADC {
		return &channels.RangeError{Value: ch, Max: channels.MaxADC}
	}
	return nil
}

// SetChunkSize configures the chunk size of an ADC channel.
func (d *Device) SetChunkSize(ch, size int) (transport.Reply, error) {
	if err := validADCChannel(ch); err != nil {
		return transport.Reply{}, err
	}
	if size < 0 || size > MaxChunkSize {
		return transport.Reply{}, &ArgError{Name: "size", Value: size, Want: "0..2047"}
	}
	return d.transact(wire.Frame{Code: 0x1, Sub: byte(ch), Ext: 0x0, Data: uint16(size)})
}

// SetChunkCount configures how many chunks an accumulation gathers on an
// ADC channel. The wire field carries count-1.
func (d *Device) SetChunkCount(ch, count int) (transport.Reply, error) {
	if err := validADCChannel(ch); err != nil {
		return transport.Reply{}, err
	}
	if count < 1 || count > MaxChunkCount {
		return transport.Reply{}, &ArgError{Name: "count", Value: count, Want: "1..65536"}
	}
	return d.transact(wire.Frame{Code: 0x4, Sub: byte(ch), Ext: 0x1, Data: uint16(count - 1)})
}

// StartAccumulation starts ADC data accumulation.
func (d *Device) StartAccumulation() (transport.Reply, error) {
	return d.transact(wire.Frame{Code: 0x4, Sub: 0x00, Ext: 0x2, Data: 0x0000})
}

// StopAccumulation stops ADC data accumulation.
func (d *Device) StopAccumulation() (transport.Reply, error) {
	return d.transact(wire.Frame{Code: 0x4, Sub: 0x00, Ext: 0x3, Data: 0x0000})
}

// SingleSample reads one sample from an ADC channel. The device answers
// with exactly one data line.
func (d *Device) SingleSample(ch int) (transport.Reply, error) {
	if err := validADCChannel(ch); err != nil {
		return transport.Reply{}, err
	}
	return d.transact(wire.Frame{Code: 0x4, Sub: byte(ch), Ext: 0x0, Data: 0x0000})
}

// RequestChunk requests a chunked data stream from an ADC channel. No
// reply line is read: the device starts transmitting bulk data which the
// caller drains separately (see ReadChunk and Session.ReadExact).
func (d *Device) RequestChunk(ch, size int) error {
	if err := validADCChannel(ch); err != nil {
		return err
	}
	if size < 0 || size > MaxChunkSize {
		return &ArgError{Name: "size", Value: size, Want: "0..2047"}
	}
	return d.Session.Send(wire.Frame{Code: 0x4, Sub: byte(ch), Ext: 0x1, Data: uint16(size)})
}

// ReadChunk requests a chunk stream and drains exactly n bytes of bulk
// data with the session timeout. Interpretation of the payload bytes is
// up to the caller. An incomplete drain is reported through the boolean;
// partial data is returned but should be treated as a failed read.
func (d *Device) ReadChunk(ch, size, n int) ([]byte, bool, error) {
	if err := d.RequestChunk(ch, size); err != nil {
		return nil, false, err
	}
	return d.Session.ReadExact(n, d.Session.Timeout)
}
