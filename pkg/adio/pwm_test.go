package adio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/adio.go/pkg/channels"
)

func TestSetPWMFrequency(t *testing.T) {
	testCases := []struct {
		name   string
		freq   int
		expect string
		fail   bool
	}{
		{name: "zero", freq: 0, expect: "*B0300000#"},
		{name: "hz band top", freq: 4095, expect: "*B0300FFF#"},
		{name: "khz", freq: 5000, expect: "*B0308005#"},
		{name: "khz top", freq: 97000, expect: "*B0308061#"},
		{name: "one hz", freq: 801, expect: "*B0300321#"},
		{name: "between bands", freq: 4096, fail: true},
		{name: "not whole khz", freq: 97500, fail: true},
		{name: "over khz band", freq: 98000, fail: true},
		{name: "negative", freq: -1, fail: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, ts := newTestDevice()
			_, err := d.SetPWMFrequency(channels.Single(3), tc.freq)
			if tc.fail {
				require.Error(t, err)
				require.Empty(t, ts.Writes())
				return
			}
			require.NoError(t, err)
			require.Equal(t, []string{tc.expect}, ts.Writes())
		})
	}
}

func TestSetPWMFrequencyPerChannel(t *testing.T) {
	d, ts := newTestDevice()
	_, err := d.SetPWMFrequency(channels.Many(0, 2), 1000)
	require.NoError(t, err)
	require.Equal(t, []string{"*B00003E8#", "*B02003E8#"}, ts.Writes())
}

func TestSetPWMDutyRaw(t *testing.T) {
	d, ts := newTestDevice()

	_, err := d.SetPWMDutyRaw(channels.Single(7), DutyAlwaysHigh)
	require.NoError(t, err)
	require.Equal(t, []string{"*C07003FF#"}, ts.Writes())

	_, err = d.SetPWMDutyRaw(channels.Single(7), 0x0400)
	require.Error(t, err)
}

func TestDutyCode(t *testing.T) {
	testCases := []struct {
		duty   float64
		expect uint16
	}{
		{0.0, 0x0000},
		{1.0, 0x03ff},
		{0.5, 0x01ff}, // not 0x0200: the device compares with <=
		{0.5 + 1.0/2048, 0x01ff},
		{0.5 - 1.0/2048, 0x01ff},
		{0.25, 0x0100},
		{0.001, 0x0001},
		{0.9999, 0x03fe},
	}
	for _, tc := range testCases {
		code, err := DutyCode(tc.duty)
		require.NoError(t, err)
		require.Equal(t, tc.expect, code, "duty=%v", tc.duty)
	}

	code, err := DutyCode(0.1)
	require.NoError(t, err)
	require.True(t, code > 0x0001 && code < 0x03fe)

	_, err = DutyCode(-0.01)
	require.Error(t, err)
	_, err = DutyCode(1.01)
	require.Error(t, err)
}

func TestSetPWMDuty(t *testing.T) {
	d, ts := newTestDevice()

	_, err := d.SetPWMDuty(channels.Many(1, 4), 0.5)
	require.NoError(t, err)
	require.Equal(t, []string{"*C01001FF#", "*C04001FF#"}, ts.Writes())
}
