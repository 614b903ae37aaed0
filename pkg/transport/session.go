package transport

import (
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/adio.go/pkg/wire"
)

// Default timing of a session.
const (
	// DefaultTimeout is the reply timeout of a standard transaction.
	DefaultTimeout = 2 * time.Second
	// DefaultFlushWait is the settle time between flush polls.
	DefaultFlushWait = 50 * time.Millisecond
	// DefaultPollInterval is the sleep between polls of Transport.Queued
	// while waiting for bytes.
	DefaultPollInterval = time.Millisecond
	// DefaultFlushStableCount is how many consecutive empty polls end a
	// flush.
	DefaultFlushStableCount = 5
	// DefaultFlushMaxAttempts bounds the number of drain rounds of a
	// flush.
	DefaultFlushMaxAttempts = 3
)

// Reply is the raw one-line response of a transaction.
//
// Raw is nil when nothing arrived before the timeout, which is distinct
// from a present but empty line. The distinction is diagnostic only;
// callers needing a reply treat both as unusable.
type Reply struct {
	Raw []byte
}

// Empty indicates no usable reply bytes.
func (r Reply) Empty() bool {
	return len(r.Raw) == 0
}

// Received indicates any bytes arrived at all.
func (r Reply) Received() bool {
	return r.Raw != nil
}

// Text returns the trimmed reply text, or a placeholder when no reply
// arrived. For display only.
func (r Reply) Text() string {
	if !r.Received() {
		return "<no response>"
	}
	return strings.TrimSpace(string(r.Raw))
}

// Session implements the command/response read discipline over a
// Transport. It is not safe for concurrent use; the protocol assumes one
// sequential caller per device.
type Session struct {
	Transport    Transport
	Timeout      time.Duration
	PollInterval time.Duration
}

// NewSession wraps a transport with default timing.
func NewSession(t Transport) *Session {
	return &Session{
		Transport:    t,
		Timeout:      DefaultTimeout,
		PollInterval: DefaultPollInterval,
	}
}

// ReadLine accumulates bytes one at a time until a line feed is seen or
// timeout elapses, and returns whatever accumulated. A timeout is not an
// error; the returned slice is simply unterminated or empty. The error is
// non-nil only when the transport itself fails.
func (s *Session) ReadLine(timeout time.Duration) ([]byte, error) {
	var line []byte
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		n, err := s.Transport.Queued()
		if err != nil {
			return line, err
		}
		if n == 0 {
			time.Sleep(s.pollInterval())
			continue
		}
		b, err := s.Transport.Read(1)
		if err != nil {
			return line, err
		}
		if len(b) == 0 {
			continue
		}
		line = append(line, b[0])
		if b[0] == wire.Terminator {
			break
		}
	}
	return line, nil
}

// ReadExact accumulates exactly size bytes, reading in available chunks.
// The boolean reports completeness; on timeout the partial bytes collected
// so far are returned with false.
func (s *Session) ReadExact(size int, timeout time.Duration) ([]byte, bool, error) {
	buf := make([]byte, 0, size)
	deadline := time.Now().Add(timeout)
	for len(buf) < size {
		if !time.Now().Before(deadline) {
			glog.V(2).Infof("read %d/%d bytes before timeout", len(buf), size)
			return buf, false, nil
		}
		n, err := s.Transport.Queued()
		if err != nil {
			return buf, false, err
		}
		if n == 0 {
			time.Sleep(s.pollInterval())
			continue
		}
		if want := size - len(buf); n > want {
			n = want
		}
		b, err := s.Transport.Read(n)
		if err != nil {
			return buf, false, err
		}
		buf = append(buf, b...)
	}
	return buf, true, nil
}

// Send writes one frame without reading a reply. This is the
// fire-and-forget path; the only command using it is the ADC chunk stream
// request, whose bulk data is drained separately with ReadExact.
func (s *Session) Send(f wire.Frame) error {
	text := f.String()
	glog.V(2).Infof("send %s", text)
	_, err := s.Transport.Write([]byte(text))
	return err
}

// Transact writes one frame and reads exactly one reply line with the
// session timeout. The error is non-nil only on transport failure; an
// absent reply is reported through the Reply value.
func (s *Session) Transact(f wire.Frame) (Reply, error) {
	if err := s.Send(f); err != nil {
		return Reply{}, err
	}
	line, err := s.ReadLine(s.timeout())
	if err != nil {
		return Reply{Raw: line}, err
	}
	r := Reply{Raw: line}
	glog.V(2).Infof("recv %s", r.Text())
	return r, nil
}

// Flush drains and discards pending received bytes until the queue stays
// empty stableCount polls in a row or maxAttempts drains happened. It
// returns the discarded text, one line per drained burst.
func (s *Session) Flush(wait time.Duration, stableCount, maxAttempts int) (string, error) {
	var drained []string
	empty, attempts := 0, 0
	for empty < stableCount && attempts < maxAttempts {
		time.Sleep(wait)
		n, err := s.Transport.Queued()
		if err != nil {
			return strings.Join(drained, "\n"), err
		}
		if n == 0 {
			empty++
			continue
		}
		b, err := s.Transport.Read(n)
		if err != nil {
			return strings.Join(drained, "\n"), err
		}
		for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				glog.V(2).Infof("flush %s", line)
				drained = append(drained, line)
			}
		}
		empty = 0
		attempts++
	}
	return strings.Join(drained, "\n"), nil
}

func (s *Session) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return DefaultTimeout
}

func (s *Session) pollInterval() time.Duration {
	if s.PollInterval > 0 {
		return s.PollInterval
	}
	return DefaultPollInterval
}
