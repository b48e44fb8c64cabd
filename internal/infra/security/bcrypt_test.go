package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAndMatches(t *testing.T) {
	hasher := NewBcryptHasher()

	encoded, err := hasher.Encode("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", encoded)

	assert.True(t, hasher.Matches("s3cret", encoded))
	assert.False(t, hasher.Matches("wrong", encoded))
}

func TestEncodeSaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher()

	a, err := hasher.Encode("s3cret")
	require.NoError(t, err)
	b, err := hasher.Encode("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestMatchesRejectsGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Matches("s3cret", "not-a-bcrypt-hash"))
}
