package transport_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/adio.go/pkg/transport"
	"github.com/robotalks/adio.go/pkg/transport/transporttest"
	"github.com/robotalks/adio.go/pkg/wire"
)

func newTestSession(ts *transporttest.Stream) *transport.Session {
	s := transport.NewSession(ts)
	s.Timeout = 50 * time.Millisecond
	s.PollInterval = time.Millisecond
	return s
}

func TestReadLine(t *testing.T) {
	ts := transporttest.New()
	s := newTestSession(ts)

	ts.Inject([]byte("*OK#\nextra"))
	line, err := s.ReadLine(50 * time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, []byte("*OK#\n"), line)

	// readLine stops at the terminator; trailing bytes stay queued.
	n, err := ts.Queued()
	require.NoError(t, err)
	require.Equal(t, len("extra"), n)
}

func TestReadLineTimeout(t *testing.T) {
	ts := transporttest.New()
	s := newTestSession(ts)

	start := time.Now()
	line, err := s.ReadLine(20 * time.Millisecond)
	require.NoError(t, err)
	require.Empty(t, line)
	require.True(t, time.Since(start) >= 20*time.Millisecond)
}

func TestReadLineUnterminated(t *testing.T) {
	ts := transporttest.New()
	s := newTestSession(ts)

	ts.Inject([]byte("*NG"))
	line, err := s.ReadLine(20 * time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, []byte("*NG"), line)
}

func TestReadExact(t *testing.T) {
	ts := transporttest.New()
	s := newTestSession(ts)

	ts.Inject([]byte{1, 2, 3, 4, 5, 6})
	buf, complete, err := s.ReadExact(4, 20*time.Millisecond)
	require.NoError(t, err)
	require.True(t, complete)
	require.Equal(t, []byte{1, 2, 3, 4}, buf)

	buf, complete, err = s.ReadExact(4, 20*time.Millisecond)
	require.NoError(t, err)
	require.False(t, complete)
	require.Equal(t, []byte{5, 6}, buf)
}

func TestTransact(t *testing.T) {
	ts := transporttest.New()
	ts.Reply = func(sent string) []byte {
		if sent == "*F0000000#" {
			return []byte("*OK#\n")
		}
		return nil
	}
	s := newTestSession(ts)

	r, err := s.Transact(wire.Frame{Code: 0xf})
	require.NoError(t, err)
	require.True(t, r.Received())
	require.Equal(t, "*OK#", r.Text())
	require.Equal(t, []string{"*F0000000#"}, ts.Writes())
}

func TestTransactNoResponse(t *testing.T) {
	ts := transporttest.New()
	s := newTestSession(ts)
	s.Timeout = 10 * time.Millisecond

	r, err := s.Transact(wire.Frame{Code: 0xf})
	require.NoError(t, err)
	require.False(t, r.Received())
	require.True(t, r.Empty())
	require.Equal(t, "<no response>", r.Text())
}

func TestReplyEmptyLineVsNoResponse(t *testing.T) {
	// A bare terminator is a received, empty line - distinct from nothing
	// arriving at all.
	present := transport.Reply{Raw: []byte{wire.Terminator}}
	require.True(t, present.Received())
	require.False(t, present.Empty())
	require.Equal(t, "", present.Text())

	absent := transport.Reply{}
	require.False(t, absent.Received())
	require.True(t, absent.Empty())
}

func TestSessionTransportError(t *testing.T) {
	ts := transporttest.New()
	s := newTestSession(ts)
	ts.Err = errors.New("unplugged")

	_, err := s.Transact(wire.Frame{Code: 0xf})
	require.Error(t, err)

	_, _, err = s.ReadExact(4, 10*time.Millisecond)
	require.Error(t, err)
}

func TestFlush(t *testing.T) {
	ts := transporttest.New()
	s := newTestSession(ts)

	ts.Inject([]byte("stale1\nstale2\n"))
	text, err := s.Flush(time.Millisecond, 2, 3)
	require.NoError(t, err)
	require.Equal(t, "stale1\nstale2", text)

	n, err := ts.Queued()
	require.NoError(t, err)
	require.Zero(t, n)
}
