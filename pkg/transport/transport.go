// Package transport defines the byte-stream capability to the ADio
// device and the read discipline layered on top of it.
package transport

import "errors"

// Transport is the minimal byte-stream capability the protocol layer
// needs. Implementations wrap the actual device link (USB-serial bridge,
// network bridge, in-memory test stream).
//
// Device lifecycle and configuration (open, baud rate, purge, buffer
// sizes) belong to the concrete implementations, not to this interface.
type Transport interface {
	// Write sends bytes to the device.
	Write(p []byte) (int, error)
	// Queued reports how many received bytes are pending.
	Queued() (int, error)
	// Read returns up to n already-received bytes. It does not block
	// waiting for more.
	Read(n int) ([]byte, error)
	// Close releases the link.
	Close() error
}

// ErrClosed indicates the transport is no longer usable.
var ErrClosed = errors.New("transport closed")
