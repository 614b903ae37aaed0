package transport

import (
	"io"
	"sync"
)

// Stream adapts a blocking io.ReadWriteCloser into a Transport.
//
// Most byte links (serial ports, network connections) only offer a
// blocking Read without a pending-byte query. A background goroutine
// pumps everything received into an internal buffer; Queued and Read
// serve from the buffer without blocking.
type Stream struct {
	rwc io.ReadWriteCloser

	lock sync.Mutex
	buf  []byte
	err  error
}

// NewStream wraps a blocking stream and starts the receive pump.
func NewStream(rwc io.ReadWriteCloser) *Stream {
	s := &Stream{rwc: rwc}
	go s.pump()
	return s
}

func (s *Stream) pump() {
	buf := make([]byte, 4096)
	for {
		n, err := s.rwc.Read(buf)
		s.lock.Lock()
		if n > 0 {
			s.buf = append(s.buf, buf[:n]...)
		}
		if err != nil {
			s.err = err
			s.lock.Unlock()
			return
		}
		s.lock.Unlock()
	}
}

// Write implements Transport.
func (s *Stream) Write(p []byte) (int, error) {
	return s.rwc.Write(p)
}

// Queued implements Transport. Buffered bytes are served even after the
// stream failed; the error surfaces once the buffer drains.
func (s *Stream) Queued() (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if len(s.buf) == 0 && s.err != nil {
		return 0, s.err
	}
	return len(s.buf), nil
}

// Read implements Transport.
func (s *Stream) Read(n int) ([]byte, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if len(s.buf) == 0 && s.err != nil {
		return nil, s.err
	}
	if n > len(s.buf) {
		n = len(s.buf)
	}
	b := make([]byte, n)
	copy(b, s.buf[:n])
	s.buf = s.buf[n:]
	return b, nil
}

// Close implements Transport. The pump goroutine exits when the closed
// stream fails its blocking read.
func (s *Stream) Close() error {
	return s.rwc.Close()
}

var _ Transport = (*Stream)(nil)
