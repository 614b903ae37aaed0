// Package env provides common options to set up a device connection
// from flags and environment variables.
package env

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/robotalks/adio.go/pkg/adio"
	"github.com/robotalks/adio.go/pkg/transport"
	"github.com/robotalks/adio.go/pkg/transport/serial"
	"github.com/robotalks/adio.go/pkg/transport/websocket"
)

// Config provides common options to open a device.
type Config struct {
	// Port is the serial device path, e.g. /dev/ttyUSB0.
	Port string
	// SerialNumber selects the port by USB serial number.
	SerialNumber string
	// BaudRate defaults to serial.DefaultBaudRate.
	BaudRate int
	// WebsocketURL connects through a gateway instead of a local port.
	// e.g. ws://host:port/path
	WebsocketURL string
	// Strict makes composite operations abort on the first failure.
	Strict bool
}

var defaultConfig Config

func init() {
	if val := os.Getenv("ADIO_PORT"); val != "" {
		defaultConfig.Port = val
	}
	if val := os.Getenv("ADIO_SERIAL"); val != "" {
		defaultConfig.SerialNumber = val
	}
	if val := os.Getenv("ADIO_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.BaudRate = baud
		}
	}
	if val := os.Getenv("ADIO_WS_URL"); val != "" {
		defaultConfig.WebsocketURL = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Port, "port", defaultConfig.Port, "Serial device path.")
	flag.StringVar(&defaultConfig.SerialNumber, "serial", defaultConfig.SerialNumber, "USB serial number of the device.")
	flag.IntVar(&defaultConfig.BaudRate, "baud", defaultConfig.BaudRate, "Serial baud rate.")
	flag.StringVar(&defaultConfig.WebsocketURL, "ws", defaultConfig.WebsocketURL, "Websocket gateway URL.")
	flag.BoolVar(&defaultConfig.Strict, "strict", defaultConfig.Strict, "Abort composite operations on first failure.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewTransport opens the transport selected by the config.
func (c *Config) NewTransport() (transport.Transport, error) {
	if c.WebsocketURL != "" {
		return websocket.Dial(c.WebsocketURL, "http://localhost/")
	}
	return serial.Open(serial.Config{
		Port:         c.Port,
		SerialNumber: c.SerialNumber,
		BaudRate:     c.BaudRate,
	})
}

// Open opens the device over the configured transport.
func (c *Config) Open() (*adio.Device, error) {
	t, err := c.NewTransport()
	if err != nil {
		return nil, err
	}
	dev := adio.New(transport.NewSession(t))
	dev.StrictComposites = c.Strict
	return dev, nil
}

// MustOpen opens the device and fails on error.
func (c *Config) MustOpen() *adio.Device {
	dev, err := c.Open()
	if err != nil {
		log.Fatalln(err)
	}
	return dev
}
