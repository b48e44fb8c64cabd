package entity

import "github.com/google/uuid"

// EntityID is the single identity type shared by Customer and User.
type EntityID struct {
	value uuid.UUID
}

// NewEntityID generates a fresh random identity.
func NewEntityID() EntityID {
	return EntityID{value: uuid.New()}
}

// EntityIDOf wraps an existing UUID. The nil UUID is never a valid identity.
func EntityIDOf(id uuid.UUID) (EntityID, error) {
	if id == uuid.Nil {
		return EntityID{}, InvalidIDError{Raw: id.String()}
	}
	return EntityID{value: id}, nil
}

// ParseEntityID wraps a UUID given in its string form.
func ParseEntityID(raw string) (EntityID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return EntityID{}, InvalidIDError{Raw: raw}
	}
	return EntityIDOf(id)
}

func (e EntityID) Value() uuid.UUID {
	return e.value
}

func (e EntityID) String() string {
	return e.value.String()
}
