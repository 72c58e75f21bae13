package property

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalIntCoercion(t *testing.T) {
	cases := []struct {
		raw   string
		want  int
		set   bool
		isErr bool
	}{
		{raw: `3`, want: 3, set: true},
		{raw: `"4"`, want: 4, set: true}, // form values arrive as strings
		{raw: `""`},
		{raw: `null`},
		{raw: `0`}, // zero normalizes to unknown, not zero rooms
		{raw: `"lots"`, isErr: true},
	}
	for _, tc := range cases {
		var o OptionalInt
		err := json.Unmarshal([]byte(tc.raw), &o)
		if tc.isErr {
			require.Error(t, err, "input %s", tc.raw)
			continue
		}
		require.NoError(t, err, "input %s", tc.raw)
		require.Equal(t, tc.set, o.Set, "input %s", tc.raw)
		if tc.set {
			require.Equal(t, tc.want, o.Value, "input %s", tc.raw)
		}
	}
}

func TestOptionalNumberHalfSteps(t *testing.T) {
	var o OptionalNumber
	require.NoError(t, json.Unmarshal([]byte(`2.5`), &o))
	require.True(t, o.Set)
	require.Equal(t, 2.5, o.Value)

	require.NoError(t, json.Unmarshal([]byte(`""`), &o))
	require.False(t, o.Set)
}

func TestUnsetOptionalsOmittedFromJSON(t *testing.T) {
	p := Property{
		ID:       "x",
		Name:     "Test",
		Bedrooms: OptionalInt{Value: 2, Set: true},
	}
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &m))
	require.Contains(t, m, "bedrooms")
	require.NotContains(t, m, "bathrooms")
	require.NotContains(t, m, "area")
}
