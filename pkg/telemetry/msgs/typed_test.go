package msgs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedRoundTrip(t *testing.T) {
	typed, err := TypedFrom(&EncoderCount{
		Channel:  2,
		Count:    -150,
		HasCount: true,
		Dir:      "-",
	})
	require.NoError(t, err)
	require.Equal(t, EncoderCountTypeID, typed.TypeId)
	require.True(t, typed.IsEvent())

	data, err := typed.Encode()
	require.NoError(t, err)
	decoded, err := DecodeTyped(data)
	require.NoError(t, err)
	msg, err := decoded.Decode()
	require.NoError(t, err)
	st, ok := msg.(*EncoderCount)
	require.True(t, ok)
	require.Equal(t, uint32(2), st.Channel)
	require.Equal(t, int64(-150), st.Count)
	require.True(t, st.HasCount)
	require.Equal(t, "-", st.Dir)
}

func TestTypedUnknownType(t *testing.T) {
	typed := &Typed{TypeId: 0x7fff0000}
	_, err := typed.Decode()
	require.Error(t, err)
	unknown, ok := err.(*ErrUnknownType)
	require.True(t, ok)
	require.Equal(t, uint32(0x7fff0000), unknown.TypeID)
}

func TestMessageTypesComplete(t *testing.T) {
	for typeID, prototype := range MessageTypes {
		require.Equal(t, typeID, prototype.TypeID())
	}
}
