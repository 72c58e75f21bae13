package property

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceUnmarshalNumberAndString(t *testing.T) {
	var p Price
	require.NoError(t, json.Unmarshal([]byte(`250000`), &p))
	v, numeric := p.Amount()
	require.True(t, numeric)
	require.Equal(t, 250000.0, v)
	require.False(t, p.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`"$250k"`), &p))
	s, textual := p.Text()
	require.True(t, textual)
	require.Equal(t, "$250k", s)
	require.False(t, p.IsZero())

	require.Error(t, json.Unmarshal([]byte(`true`), &p))
}

func TestPriceStoredVerbatim(t *testing.T) {
	// the store never parses prices; both representations round-trip as-is
	for _, raw := range []string{`850000`, `"Contact agent"`, `199.99`} {
		var p Price
		require.NoError(t, json.Unmarshal([]byte(raw), &p))
		out, err := json.Marshal(p)
		require.NoError(t, err)
		require.JSONEq(t, raw, string(out))
	}
}

func TestPriceMissingForms(t *testing.T) {
	// absent, null, empty string, and zero all count as missing
	require.True(t, Price{}.IsZero())

	var p Price
	require.NoError(t, json.Unmarshal([]byte(`null`), &p))
	require.True(t, p.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &p))
	require.True(t, p.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`0`), &p))
	require.True(t, p.IsZero())
}
