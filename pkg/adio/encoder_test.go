package adio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/adio.go/pkg/channels"
)

func TestSetEncoderMode(t *testing.T) {
	d, ts := newTestDevice()

	// Direction to input, mode pinned to GPIO, then encoder enable.
	_, err := d.SetEncoderMode(channels.Many(0, 1))
	require.NoError(t, err)
	require.Equal(t, []string{
		"*90300003#",
		"*A0300000#",
		"*A0310000#",
	}, ts.Writes())

	_, err = d.SetEncoderMode(channels.Single(4))
	require.Error(t, err)
}

func TestEncoderPresetHiLo(t *testing.T) {
	d, ts := newTestDevice()

	// The sub field carries the channel index itself, not a mask.
	_, err := d.EncoderPresetHi(channels.Single(2), 0xdead)
	require.NoError(t, err)
	_, err = d.EncoderPresetLo(channels.Single(2), 0xbeef)
	require.NoError(t, err)
	require.Equal(t, []string{"*A022DEAD#", "*A023BEEF#"}, ts.Writes())
}

func TestEncoderPresetAllExpands(t *testing.T) {
	d, ts := newTestDevice()

	replies, err := d.EncoderPresetHi(channels.All(), 0x0001)
	require.NoError(t, err)
	require.Len(t, replies, 4)
	require.Equal(t, []string{
		"*A0020001#", "*A0120001#", "*A0220001#", "*A0320001#",
	}, ts.Writes())
}

func TestEncoderPreset32(t *testing.T) {
	d, ts := newTestDevice()

	// All HI frames first, then all LO frames.
	replies, err := d.EncoderPreset32(channels.Many(0, 3), 0x12345678)
	require.NoError(t, err)
	require.Len(t, replies, 4)
	require.Equal(t, []string{
		"*A0021234#", "*A0321234#",
		"*A0035678#", "*A0335678#",
	}, ts.Writes())
}

func TestEncoderControl(t *testing.T) {
	d, ts := newTestDevice()

	inv := true
	_, err := d.Control(channels.Single(1), EncoderControl{DirInvert: &inv})
	require.NoError(t, err)
	_, err = d.Control(channels.Single(1), EncoderControl{Reset: true})
	require.NoError(t, err)
	_, err = d.Control(channels.Single(1), EncoderControl{LoadPreset: true})
	require.NoError(t, err)
	_, err = d.Control(channels.Single(1), EncoderControl{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"*A0140001#", "*A0140002#", "*A0140004#", "*A0140000#",
	}, ts.Writes())
}

func TestEncoderControlExclusivePulses(t *testing.T) {
	d, ts := newTestDevice()

	_, err := d.Control(channels.Single(0), EncoderControl{Reset: true, LoadPreset: true})
	require.Error(t, err)
	_, ok := err.(*ArgError)
	require.True(t, ok)
	require.Empty(t, ts.Writes())
}

func TestEncoderControlShortcuts(t *testing.T) {
	d, ts := newTestDevice()

	_, err := d.EncoderDirInvert(channels.Single(2), true)
	require.NoError(t, err)
	_, err = d.EncoderDirInvert(channels.Single(2), false)
	require.NoError(t, err)
	_, err = d.EncoderCountReset(channels.Single(2))
	require.NoError(t, err)
	_, err = d.EncoderLoadPreset(channels.Single(2))
	require.NoError(t, err)
	require.Equal(t, []string{
		"*A0240001#", "*A0240000#", "*A0240002#", "*A0240004#",
	}, ts.Writes())
}

func TestEncoderStatus(t *testing.T) {
	d, ts := newTestDevice()
	ts.Reply = func(sent string) []byte {
		require.Equal(t, "*D0210000#", sent)
		return []byte("*D2,000FA3H,UP,0,0#\n")
	}

	st, err := d.EncoderStatus(2)
	require.NoError(t, err)
	require.Equal(t, 2, st.Channel)
	require.Equal(t, "*D2,000FA3H,UP,0,0#", st.Raw)
	require.NotNil(t, st.Count)
	require.Equal(t, int64(0xfa3), *st.Count)
	require.Equal(t, "UP", st.Dir)
	require.Equal(t, "0", st.Overflow)
	require.Equal(t, "0", st.AtEnd)
}

func TestEncoderStatusDecimalCount(t *testing.T) {
	d, ts := newTestDevice()
	ts.Reply = func(string) []byte { return []byte("*D0,1023,DOWN\n") }

	st, err := d.EncoderStatus(0)
	require.NoError(t, err)
	require.NotNil(t, st.Count)
	require.Equal(t, int64(1023), *st.Count)
	require.Equal(t, "DOWN", st.Dir)
	require.Empty(t, st.Overflow)
	require.Empty(t, st.AtEnd)
}

func TestEncoderStatusDegraded(t *testing.T) {
	// A malformed reply is not an error; fields stay absent.
	for _, reply := range []string{"garbage\n", "*D1#\n", "\n"} {
		d, ts := newTestDevice()
		ts.Reply = func(string) []byte { return []byte(reply) }

		st, err := d.EncoderStatus(1)
		require.NoError(t, err)
		require.Nil(t, st.Count)
		require.Empty(t, st.Dir)
	}

	d, _ := newTestDevice()
	_, err := d.EncoderStatus(4)
	require.Error(t, err)
}
