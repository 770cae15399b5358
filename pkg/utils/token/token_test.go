package token

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionTokenShape(t *testing.T) {
	tok, err := NewSessionToken()
	require.NoError(t, err)
	assert.Len(t, tok, 32)

	_, err = hex.DecodeString(tok)
	assert.NoError(t, err, "token must be hex-encoded")
}

func TestNewSessionTokenUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		tok, err := NewSessionToken()
		require.NoError(t, err)
		_, dup := seen[tok]
		require.False(t, dup, "token collision after %d tokens", i)
		seen[tok] = struct{}{}
	}
}

func TestNewSuffix(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{6, 6},
		{7, 7},
	}

	for _, tt := range tests {
		got, err := NewSuffix(tt.n)
		require.NoError(t, err)
		assert.Len(t, got, tt.want)
	}
}
