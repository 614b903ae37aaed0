package adio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVoltage(t *testing.T) {
	require.Equal(t, 0.0, Voltage(0, 1))
	require.InDelta(t, 5.0, Voltage(524287, 1), 0.0001)
	require.True(t, Voltage(524287, 1) < 5.0)
	// 524288 is the wrap point into the negative half.
	require.Equal(t, -5.0, Voltage(524288, 1))
	require.Equal(t, -2.5, Voltage(786432, 1))
	// Max raw folds to -1, just below zero.
	require.True(t, Voltage(1048575, 1) < 0)
	require.InDelta(t, 0.0, Voltage(1048575, 1), 0.0001)
	require.Equal(t, 2.5, Voltage(262144, 1))

	// Gain factor scales the result.
	require.Equal(t, -10.0, Voltage(786432, 4))
	require.Equal(t, 1.25, Voltage(262144, 0.5))
}

func TestSamplingCommand(t *testing.T) {
	testCases := []struct {
		fs     int
		target int
		expect string
		fail   bool
	}{
		{fs: 1, target: RateTargetLow, expect: "*00000000#"},
		{fs: 64, target: RateTargetLow, expect: "*00000006#"},
		{fs: 64, target: RateTargetHigh, expect: "*00100006#"},
		{fs: 32, target: RateTargetLow, expect: "*00000005#"},
		{fs: 256, target: RateTargetLow, expect: "*00000008#"},
		{fs: 3, target: RateTargetLow, fail: true},
		{fs: 64, target: 2, fail: true},
	}
	for _, tc := range testCases {
		cmd, err := SamplingCommand(tc.fs, tc.target)
		if tc.fail {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.expect, cmd)
	}
}
