package adio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/adio.go/pkg/channels"
	"github.com/robotalks/adio.go/pkg/transport"
	"github.com/robotalks/adio.go/pkg/transport/transporttest"
)

// newTestDevice builds a device over a scripted stream answering *OK# to
// every frame, with short timeouts.
func newTestDevice() (*Device, *transporttest.Stream) {
	ts := transporttest.New()
	ts.Reply = func(string) []byte { return []byte("*OK#\n") }
	s := transport.NewSession(ts)
	s.Timeout = 50 * time.Millisecond
	s.PollInterval = time.Millisecond
	return New(s), ts
}

func TestReset(t *testing.T) {
	d, ts := newTestDevice()

	r, err := d.Reset(ResetAll)
	require.NoError(t, err)
	require.Equal(t, "*OK#", r.Text())

	_, err = d.Reset(ResetADCTransmit)
	require.NoError(t, err)

	_, err = d.Reset(ResetMode(2))
	require.Error(t, err)
	_, ok := err.(*ArgError)
	require.True(t, ok)

	require.Equal(t, []string{"*F0000000#", "*F0000001#"}, ts.Writes())
}

func TestResetShortcuts(t *testing.T) {
	d, ts := newTestDevice()
	_, err := d.ResetAllSettings()
	require.NoError(t, err)
	_, err = d.ResetADCTx()
	require.NoError(t, err)
	require.Equal(t, []string{"*F0000000#", "*F0000001#"}, ts.Writes())
}

func TestFlushInput(t *testing.T) {
	d, ts := newTestDevice()
	ts.Inject([]byte("*STALE#\n*MORE#\n"))
	drained, err := d.FlushInput()
	require.NoError(t, err)
	require.Equal(t, "*STALE#\n*MORE#", drained)
}

func TestCompositeBestEffort(t *testing.T) {
	// Default policy: an interior step without a reply does not stop the
	// remaining frames.
	d, ts := newTestDevice()
	d.Session.Timeout = 10 * time.Millisecond
	ts.Reply = nil // device stays silent

	replies, err := d.SetEncoderMode(channels.All())
	require.NoError(t, err)
	require.Len(t, replies, 3)
	for _, r := range replies {
		require.False(t, r.Received())
	}
	require.Len(t, ts.Writes(), 3)
}

func TestCompositeStrict(t *testing.T) {
	d, ts := newTestDevice()
	d.Session.Timeout = 10 * time.Millisecond
	d.StrictComposites = true
	ts.Reply = nil

	replies, err := d.SetEncoderMode(channels.All())
	require.Equal(t, ErrNoReply, err)
	require.Len(t, replies, 1)
	require.Len(t, ts.Writes(), 1)
}
