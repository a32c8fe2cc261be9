package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	tok, err := maker.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := maker.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseExpiredToken(t *testing.T) {
	maker := NewMaker("test-secret", -time.Minute)

	tok, err := maker.Generate(42)
	require.NoError(t, err)

	_, err = maker.Parse(tok)
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)
	other := NewMaker("other-secret", time.Hour)

	tok, err := maker.Generate(42)
	require.NoError(t, err)

	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	_, err := maker.Parse("definitely-not-a-jwt")
	assert.Error(t, err)
}

func TestTokensAreIndependent(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	first, err := maker.Generate(1)
	require.NoError(t, err)
	second, err := maker.Generate(2)
	require.NoError(t, err)

	claims, err := maker.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)

	claims, err = maker.Parse(second)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), claims.UserID)
}
