package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewEntityIDIsRandom(t *testing.T) {
	a := NewEntityID()
	b := NewEntityID()

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, uuid.Nil, a.Value())
}

func TestEntityIDOf(t *testing.T) {
	raw := uuid.New()

	id, err := EntityIDOf(raw)
	assert.NoError(t, err)
	assert.Equal(t, raw, id.Value())

	_, err = EntityIDOf(uuid.Nil)
	assert.IsType(t, InvalidIDError{}, err)
}

func TestParseEntityID(t *testing.T) {
	raw := uuid.New()

	id, err := ParseEntityID(raw.String())
	assert.NoError(t, err)
	assert.Equal(t, raw.String(), id.String())

	_, err = ParseEntityID("not-a-uuid")
	assert.IsType(t, InvalidIDError{}, err)
}
