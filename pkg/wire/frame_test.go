package wire

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var framePattern = regexp.MustCompile(`^\*[0-9A-F][0-9A-F]{2}[0-9A-F][0-9A-F]{4}#$`)

func TestFrameString(t *testing.T) {
	testCases := []struct {
		name   string
		frame  Frame
		expect string
	}{
		{"zero", Frame{}, "*00000000#"},
		{"pwm freq", Frame{Code: 0xb, Sub: 0x00, Ext: 0x0, Data: 0x0801}, "*B0000801#"},
		{"adc chunk size", Frame{Code: 0x1, Sub: 0x0f, Ext: 0x0, Data: 0x07ff}, "*10F007FF#"},
		{"all max", Frame{Code: 0xf, Sub: 0xff, Ext: 0xf, Data: 0xffff}, "*FFFFFFFF#"},
		{"gpio write", Frame{Code: 0xe, Sub: 0x00, Ext: 0x0, Data: 0x00a5}, "*E00000A5#"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.frame.String()
			require.Equal(t, tc.expect, s)
			require.Len(t, s, FrameLen)
			require.Regexp(t, framePattern, s)
		})
	}
}

func TestFrameStringAlwaysTenChars(t *testing.T) {
	// Sweep the field corners; every valid frame must encode to the fixed
	// width and match the wire pattern.
	for _, code := range []byte{0, 1, 7, 0xa, 0xf} {
		for _, sub := range []byte{0, 1, 0x10, 0x7f, 0xff} {
			for _, ext := range []byte{0, 1, 4, 0xf} {
				for _, data := range []uint16{0, 1, 0x03ff, 0x8061, 0xffff} {
					f, err := New(code, sub, ext, data)
					require.NoError(t, err)
					s := f.String()
					require.Len(t, s, FrameLen)
					require.Regexp(t, framePattern, s)
				}
			}
		}
	}
}

func TestNewRejectsWideFields(t *testing.T) {
	_, err := New(0x10, 0, 0, 0)
	require.Error(t, err)
	fe, ok := err.(*FieldError)
	require.True(t, ok)
	require.Equal(t, "code", fe.Field)

	_, err = New(0, 0, 0x10, 0)
	require.Error(t, err)
	fe, ok = err.(*FieldError)
	require.True(t, ok)
	require.Equal(t, "ext", fe.Field)
}

func TestFrameBytes(t *testing.T) {
	f := Frame{Code: 0x4, Sub: 0x03, Ext: 0x1, Data: 0x00ff}
	require.Equal(t, []byte("*403100FF#"), f.Bytes())
}
