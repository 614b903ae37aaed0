// Package transporttest provides an in-memory Transport for tests.
package transporttest

import (
	"sync"

	"github.com/robotalks/adio.go/pkg/transport"
)

// Stream is a scripted in-memory transport. Writes are recorded; reads
// are served from an injected pending buffer. An optional Reply func acts
// as the device: it is invoked with each written payload and its result,
// if any, is queued for reading.
type Stream struct {
	// Reply scripts the device side. May be nil.
	Reply func(sent string) []byte
	// Err, when set, is returned by every subsequent operation.
	Err error

	lock    sync.Mutex
	pending []byte
	writes  []string
	closed  bool
}

// New creates an empty stream.
func New() *Stream {
	return &Stream{}
}

// Write implements Transport.
func (s *Stream) Write(p []byte) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if s.closed {
		return 0, transport.ErrClosed
	}
	s.writes = append(s.writes, string(p))
	if s.Reply != nil {
		if resp := s.Reply(string(p)); resp != nil {
			s.pending = append(s.pending, resp...)
		}
	}
	return len(p), nil
}

// Queued implements Transport.
func (s *Stream) Queued() (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return len(s.pending), nil
}

// Read implements Transport.
func (s *Stream) Read(n int) ([]byte, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if n > len(s.pending) {
		n = len(s.pending)
	}
	b := make([]byte, n)
	copy(b, s.pending[:n])
	s.pending = s.pending[n:]
	return b, nil
}

// Close implements Transport.
func (s *Stream) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.closed = true
	return nil
}

// Inject queues bytes to be read.
func (s *Stream) Inject(b []byte) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.pending = append(s.pending, b...)
}

// Writes returns all captured writes in order.
func (s *Stream) Writes() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	out := make([]string, len(s.writes))
	copy(out, s.writes)
	return out
}

var _ transport.Transport = (*Stream)(nil)
