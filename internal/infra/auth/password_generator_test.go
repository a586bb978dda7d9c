package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPasswordGenerator_Length(t *testing.T) {
	tests := []struct {
		name       string
		configured int
		want       int
	}{
		{name: "configured length", configured: 16, want: 16},
		{name: "minimum length", configured: 8, want: 8},
		{name: "below minimum falls back to default", configured: 4, want: 12},
		{name: "zero falls back to default", configured: 0, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewRandomPasswordGenerator(tt.configured)

			password, err := gen.Generate()
			require.NoError(t, err)
			assert.Len(t, password, tt.want)
		})
	}
}

func TestRandomPasswordGenerator_Charset(t *testing.T) {
	gen := NewRandomPasswordGenerator(64)

	password, err := gen.Generate()
	require.NoError(t, err)

	for _, c := range password {
		assert.True(t, strings.ContainsRune(passwordAlphabet, c), "unexpected character %q", c)
	}
}

func TestRandomPasswordGenerator_DistinctPerCall(t *testing.T) {
	gen := NewRandomPasswordGenerator(12)

	seen := make(map[string]bool)
	for range 32 {
		password, err := gen.Generate()
		require.NoError(t, err)
		assert.False(t, seen[password], "generated password repeated: %s", password)
		seen[password] = true
	}
}
