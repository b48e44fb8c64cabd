package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUser(t *testing.T, roles ...Role) *User {
	t.Helper()

	username, err := NewUsername("operator")
	require.NoError(t, err)
	email, err := NewEmail("operator@example.com")
	require.NoError(t, err)

	return NewUser(NewEntityID(), username, email, roles, "$2a$10$encoded")
}

func TestUserAccessors(t *testing.T) {
	user := buildUser(t, RoleAdmin, RoleUser)

	assert.Equal(t, "operator", user.Username())
	assert.Equal(t, "operator@example.com", user.Email())
	assert.Equal(t, "$2a$10$encoded", user.EncodedPassword())
	assert.True(t, user.HasRole(RoleAdmin))
	assert.True(t, user.HasRole(RoleUser))
}

func TestUserRolesAreCopied(t *testing.T) {
	user := buildUser(t, RoleUser)

	roles := user.Roles()
	roles[0] = RoleAdmin

	assert.False(t, user.HasRole(RoleAdmin))
}

func TestUserEqualityIsByIdentity(t *testing.T) {
	a := buildUser(t, RoleUser)
	b := buildUser(t, RoleUser)

	assert.False(t, a.Equals(b))
	assert.True(t, a.Equals(a))
}

func TestParseRoles(t *testing.T) {
	roles, err := ParseRoles([]string{"ADMIN", "USER", "ADMIN"})
	assert.NoError(t, err)
	assert.Equal(t, []Role{RoleAdmin, RoleUser}, roles)

	_, err = ParseRoles([]string{"ROOT"})
	assert.ErrorIs(t, err, InvalidRoleError{Role: "ROOT"})
}
