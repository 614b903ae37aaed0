// Package serial implements transport.Transport over a USB-serial port.
package serial

import (
	"fmt"

	"github.com/golang/glog"
	bugst "go.bug.st/serial"
	"go.bug.st/serial/enumerator"

	"github.com/robotalks/adio.go/pkg/transport"
)

// DefaultBaudRate is used when Config.BaudRate is zero.
const DefaultBaudRate = 115200

// Config selects and configures the port.
type Config struct {
	// Port is the device path, e.g. /dev/ttyUSB0. Ignored when
	// SerialNumber is set.
	Port string
	// SerialNumber selects the port by USB serial number instead of
	// device path.
	SerialNumber string
	// BaudRate defaults to DefaultBaudRate.
	BaudRate int
}

// List returns the USB serial numbers of attached serial ports. Ports
// without one are skipped.
func List() ([]string, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}
	var serials []string
	for _, d := range details {
		if d.IsUSB && d.SerialNumber != "" {
			serials = append(serials, d.SerialNumber)
		}
	}
	return serials, nil
}

// findBySerialNumber resolves a USB serial number to a device path.
func findBySerialNumber(sn string) (string, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", err
	}
	for _, d := range details {
		if d.IsUSB && d.SerialNumber == sn {
			return d.Name, nil
		}
	}
	return "", fmt.Errorf("no serial port with serial number %q", sn)
}

// OpenBySerialNumber opens the port carrying the given USB serial
// number with default settings.
func OpenBySerialNumber(sn string) (*transport.Stream, error) {
	return Open(Config{SerialNumber: sn})
}

// Open opens and configures the port, 8N1 at the configured baud rate,
// with the receive side drained. The OS port cannot report pending
// receive bytes, so the returned transport is a transport.Stream pumping
// the port in the background.
func Open(conf Config) (*transport.Stream, error) {
	name := conf.Port
	if conf.SerialNumber != "" {
		var err error
		if name, err = findBySerialNumber(conf.SerialNumber); err != nil {
			return nil, err
		}
	}
	baud := conf.BaudRate
	if baud == 0 {
		baud = DefaultBaudRate
	}
	mode := &bugst.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   bugst.NoParity,
		StopBits: bugst.OneStopBit,
	}
	port, err := bugst.Open(name, mode)
	if err != nil {
		return nil, err
	}
	port.ResetInputBuffer()
	port.ResetOutputBuffer()
	glog.Infof("opened %s at %d baud", name, baud)
	return transport.NewStream(port), nil
}
