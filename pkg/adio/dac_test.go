package adio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/adio.go/pkg/channels"
)

func TestSetLDAC(t *testing.T) {
	d, ts := newTestDevice()

	_, err := d.SetLDAC(0)
	require.NoError(t, err)
	_, err = d.SetLDAC(1)
	require.NoError(t, err)
	require.Equal(t, []string{"*70000000#", "*70000001#"}, ts.Writes())

	_, err = d.SetLDAC(2)
	require.Error(t, err)
}

func TestSetLDACMask(t *testing.T) {
	d, ts := newTestDevice()

	_, err := d.SetLDACMask(0xa5)
	require.NoError(t, err)
	require.Equal(t, []string{"*800000A5#"}, ts.Writes())
}

func TestMaskLDACChannels(t *testing.T) {
	d, ts := newTestDevice()

	_, err := d.MaskLDACChannels(channels.Many(0, 3, 5))
	require.NoError(t, err)
	_, err = d.MaskLDACChannels(channels.All())
	require.NoError(t, err)
	require.Equal(t, []string{"*80000029#", "*800000FF#"}, ts.Writes())

	_, err = d.MaskLDACChannels(channels.Single(8))
	require.Error(t, err)
}

func TestDACSetAndOut(t *testing.T) {
	d, ts := newTestDevice()

	_, err := d.DACSet(0, 0x8000)
	require.NoError(t, err)
	_, err = d.DACOut(8, 0xffff)
	require.NoError(t, err)
	require.Equal(t, []string{"*60018000#", "*6083FFFF#"}, ts.Writes())

	_, err = d.DACSet(9, 0)
	require.Error(t, err)
	_, err = d.DACOut(-1, 0)
	require.Error(t, err)
}

func TestSetGain(t *testing.T) {
	d, ts := newTestDevice()

	for _, g := range []Gain{Gain10V, Gain5V, Gain1V25, Gain0V3125, Gain0V12625} {
		_, err := d.SetGain(7, g)
		require.NoError(t, err)
	}
	require.Equal(t, []string{
		"*50700000#", "*50700001#", "*50700002#", "*50700003#", "*50700004#",
	}, ts.Writes())

	_, err := d.SetGain(7, Gain(5))
	require.Error(t, err)
	_, err = d.SetGain(16, Gain5V)
	require.Error(t, err)
}

func TestGain(t *testing.T) {
	require.Equal(t, "±5V", Gain5V.String())
	require.Equal(t, "±10V", Gain10V.String())
	require.Equal(t, 1.0, Gain5V.Multiplier())
	require.Equal(t, 0.5, Gain10V.Multiplier())
	require.Equal(t, 32.0, Gain0V12625.Multiplier())
	require.False(t, Gain(5).Valid())
}
