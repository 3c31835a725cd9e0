package region

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalize_AllCanonicalNames verifies every recognized state maps to
// itself regardless of casing or padding.
func TestNormalize_AllCanonicalNames(t *testing.T) {
	for _, want := range All() {
		for _, raw := range []string{
			string(want),
			"  " + string(want) + " ",
			upper(string(want)),
			lower(string(want)),
		} {
			got, err := Normalize(raw)
			require.NoError(t, err, "input %q", raw)
			assert.Equal(t, want, got, "input %q", raw)
		}
	}
}

// TestNormalize_FCTAliases verifies every capital-territory spelling folds
// into the single canonical value.
func TestNormalize_FCTAliases(t *testing.T) {
	for _, raw := range []string{
		"FCT", "fct", "Fct",
		"Abuja", "ABUJA", "abuja",
		"Federal Capital Territory", "federal capital territory",
		"  Abuja ",
	} {
		got, err := Normalize(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, FCT, got, "input %q", raw)
	}
}

// TestNormalize_RejectsUnknownNames verifies any other string is a hard
// failure carrying the original raw value.
func TestNormalize_RejectsUnknownNames(t *testing.T) {
	for _, raw := range []string{"", "Accra", "Lagos State", "Nigeri", "Abuj"} {
		_, err := Normalize(raw)
		require.Error(t, err, "input %q", raw)

		var ise *InvalidStateError
		require.True(t, errors.As(err, &ise), "input %q", raw)
		assert.Equal(t, raw, ise.Value)
	}
}

func TestAll_Has37States(t *testing.T) {
	states := All()
	assert.Len(t, states, 37)
	assert.Contains(t, states, FCT)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Lagos"))
	assert.True(t, IsValid("FCT"))
	assert.False(t, IsValid("Abuja"))
	assert.False(t, IsValid("lagos"))
}

func upper(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
