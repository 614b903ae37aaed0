package adio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetChunkSize(t *testing.T) {
	d, ts := newTestDevice()

	_, err := d.SetChunkSize(0, 0)
	require.NoError(t, err)
	_, err = d.SetChunkSize(15, 2047)
	require.NoError(t, err)
	require.Equal(t, []string{"*10000000#", "*10F007FF#"}, ts.Writes())

	_, err = d.SetChunkSize(16, 100)
	require.Error(t, err)
	_, err = d.SetChunkSize(0, 2048)
	require.Error(t, err)
	require.Len(t, ts.Writes(), 2) // nothing sent on validation errors
}

func TestSetChunkCount(t *testing.T) {
	d, ts := newTestDevice()

	// The wire field carries count-1.
	_, err := d.SetChunkCount(3, 1)
	require.NoError(t, err)
	_, err = d.SetChunkCount(3, 65536)
	require.NoError(t, err)
	require.Equal(t, []string{"*40310000#", "*4031FFFF#"}, ts.Writes())

	_, err = d.SetChunkCount(3, 0)
	require.Error(t, err)
	_, err = d.SetChunkCount(3, 65537)
	require.Error(t, err)
}

func TestAccumulation(t *testing.T) {
	d, ts := newTestDevice()

	_, err := d.StartAccumulation()
	require.NoError(t, err)
	_, err = d.StopAccumulation()
	require.NoError(t, err)
	require.Equal(t, []string{"*40020000#", "*40030000#"}, ts.Writes())
}

func TestSingleSample(t *testing.T) {
	d, ts := newTestDevice()
	ts.Reply = func(sent string) []byte {
		require.Equal(t, "*40500000#", sent)
		return []byte("*4050FFDE#\n")
	}

	r, err := d.SingleSample(5)
	require.NoError(t, err)
	require.Equal(t, "*4050FFDE#", r.Text())

	_, err = d.SingleSample(16)
	require.Error(t, err)
}

func TestRequestChunkIsFireAndForget(t *testing.T) {
	d, ts := newTestDevice()
	ts.Reply = func(string) []byte { return []byte{0x01, 0x02, 0x03} }

	err := d.RequestChunk(2, 512)
	require.NoError(t, err)
	require.Equal(t, []string{"*40210200#"}, ts.Writes())

	// No reply line was consumed: the bulk bytes are still queued.
	n, err := ts.Queued()
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestReadChunk(t *testing.T) {
	d, ts := newTestDevice()
	payload := make([]byte, 64)
	for i := range payload {
		payload[i] = byte(i)
	}
	ts.Reply = func(string) []byte { return payload }

	buf, complete, err := d.ReadChunk(0, 64, 64)
	require.NoError(t, err)
	require.True(t, complete)
	require.Equal(t, payload, buf)
}

func TestReadChunkIncomplete(t *testing.T) {
	d, ts := newTestDevice()
	d.Session.Timeout = 10 * time.Millisecond
	ts.Reply = func(string) []byte { return []byte{1, 2} }

	buf, complete, err := d.ReadChunk(0, 64, 64)
	require.NoError(t, err)
	require.False(t, complete)
	require.Equal(t, []byte{1, 2}, buf)
}
