package sessions

import (
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/yucheng-lo/foundbot/pkg/errors"
)

func TestStateCodecRoundTrip(t *testing.T) {
	for _, state := range []State{StateWaitingForImage, StateWaitingForDescription, StateWaitingForLocation} {
		code, err := encodeState(state)
		require.NoError(t, err)

		decoded, err := decodeState(code)
		require.NoError(t, err)
		require.Equal(t, state, decoded)
	}
}

func TestIdleIsNotPersistable(t *testing.T) {
	_, err := encodeState(StateIdle)
	require.ErrorIs(t, err, errs.ErrStorage)
}

func TestDecodeUnknownCode(t *testing.T) {
	_, err := decodeState("reporting_wait_for_godot")
	require.ErrorIs(t, err, errs.ErrStorage)
}

func TestReporting(t *testing.T) {
	require.False(t, StateIdle.Reporting())
	require.True(t, StateWaitingForImage.Reporting())
	require.True(t, StateWaitingForDescription.Reporting())
	require.True(t, StateWaitingForLocation.Reporting())
}
