// Package telemetry publishes device state over MQTT and accepts
// remote output commands.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/adio.go/pkg/adio"
	"github.com/robotalks/adio.go/pkg/telemetry/msgs"
)

// DefaultInterval is the default polling interval.
const DefaultInterval = time.Second

// Publisher polls a device and publishes snapshots. It implements
// run.Runnable.
type Publisher struct {
	Device *adio.Device
	Queue  *Queue

	// DeviceID distinguishes devices in topics. Defaults to MachineID.
	DeviceID string
	// Interval between polls. Defaults to DefaultInterval.
	Interval time.Duration
	// GPIO enables polling the digital port.
	GPIO bool
	// Encoders lists the encoder channels to poll.
	Encoders []int
	// ADC lists the analog channels to sample.
	ADC []int
	// Meta is published retained on start when non-nil.
	Meta *msgs.DeviceMeta
}

// NewPublisher creates a Publisher with defaults.
func NewPublisher(device *adio.Device, queue *Queue) *Publisher {
	return &Publisher{
		Device:   device,
		Queue:    queue,
		DeviceID: MachineID(),
		Interval: DefaultInterval,
	}
}

// Name implements run.Named.
func (p *Publisher) Name() string {
	return "telemetry"
}

func (p *Publisher) topic(sub string) string {
	return "adio/" + p.DeviceID + "/" + sub
}

func (p *Publisher) pub(sub string, msg msgs.Message, retain bool) {
	typed, err := msgs.TypedFrom(msg)
	if err != nil {
		glog.Errorf("encode %s: %v", sub, err)
		return
	}
	data, err := typed.Encode()
	if err != nil {
		glog.Errorf("encode %s: %v", sub, err)
		return
	}
	p.Queue.PubWith(p.topic(sub), data, 0, retain)
}

// Run implements run.Runnable. It publishes the retained meta message,
// subscribes the output command topic, and polls until the context is
// canceled. Poll failures are logged, not fatal: the device may be
// detached and re-attached while the broker connection stays up.
func (p *Publisher) Run(ctx context.Context) error {
	if p.Meta != nil {
		p.pub("meta", p.Meta, true)
	}
	if err := p.Queue.Sub(p.topic("gpio/set"), p.handleGpioSet); err != nil {
		return err
	}
	interval := p.Interval
	if interval == 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.poll()
		}
	}
}

func (p *Publisher) poll() {
	if p.GPIO {
		r, err := p.Device.ReadGPIO()
		if err != nil {
			glog.Warningf("gpio read: %v", err)
		} else {
			p.pub("gpio", &msgs.GpioState{
				Value: uint32(r.Value) & 0xff,
				Known: !r.Unknown(),
			}, false)
		}
	}
	for _, ch := range p.Encoders {
		st, err := p.Device.EncoderStatus(ch)
		if err != nil {
			glog.Warningf("encoder %d: %v", ch, err)
			continue
		}
		msg := &msgs.EncoderCount{
			Channel:  uint32(ch),
			Dir:      st.Dir,
			Overflow: st.Overflow,
			AtEnd:    st.AtEnd,
		}
		if st.Count != nil {
			msg.Count, msg.HasCount = *st.Count, true
		}
		p.pub(fmt.Sprintf("enc/%d", ch), msg, false)
	}
	for _, ch := range p.ADC {
		r, err := p.Device.SingleSample(ch)
		if err != nil {
			glog.Warningf("adc %d: %v", ch, err)
			continue
		}
		if !r.Received() {
			glog.Warningf("adc %d: no data line", ch)
			continue
		}
		p.pub(fmt.Sprintf("adc/%d", ch), &msgs.AdcSample{
			Channel: uint32(ch),
			Line:    r.Raw,
		}, false)
	}
}

// handleGpioSet applies a remote digital output command. The payload is
// a Typed GpioState; only Value is used.
func (p *Publisher) handleGpioSet(topic string, payload []byte) {
	typed, err := msgs.DecodeTyped(payload)
	if err != nil {
		glog.Warningf("gpio/set: %v", err)
		return
	}
	msg, err := typed.Decode()
	if err != nil {
		glog.Warningf("gpio/set: %v", err)
		return
	}
	state, ok := msg.(*msgs.GpioState)
	if !ok {
		glog.Warningf("gpio/set: unexpected type %x", typed.TypeId)
		return
	}
	if _, err = p.Device.WriteGPIO(byte(state.Value)); err != nil {
		glog.Warningf("gpio/set: %v", err)
	}
}
