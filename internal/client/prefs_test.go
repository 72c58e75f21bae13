package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	p, err := NewPrefs(dir)
	require.NoError(t, err)
	require.False(t, p.DarkMode(), "missing file means default")

	require.NoError(t, p.SetDarkMode(true))
	require.True(t, p.DarkMode())

	// a fresh handle over the same directory sees the persisted value
	p2, err := NewPrefs(dir)
	require.NoError(t, err)
	require.True(t, p2.DarkMode())

	require.NoError(t, p2.SetDarkMode(false))
	require.False(t, p.DarkMode())
}
