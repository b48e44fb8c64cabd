package entity

// User is the authentication identity operating the API, distinct from the
// Customer records it manages.
type User struct {
	id              EntityID
	username        Username
	email           Email
	roles           []Role
	encodedPassword string
}

func NewUser(id EntityID, username Username, email Email, roles []Role, encodedPassword string) *User {
	return &User{
		id:              id,
		username:        username,
		email:           email,
		roles:           roles,
		encodedPassword: encodedPassword,
	}
}

func ReconstituteUser(id EntityID, username Username, email Email, roles []Role, encodedPassword string) *User {
	return NewUser(id, username, email, roles, encodedPassword)
}

func (u *User) ID() EntityID {
	return u.id
}

func (u *User) Username() string {
	return u.username.Value()
}

func (u *User) Email() string {
	return u.email.Value()
}

func (u *User) Roles() []Role {
	out := make([]Role, len(u.roles))
	copy(out, u.roles)
	return out
}

func (u *User) EncodedPassword() string {
	return u.encodedPassword
}

func (u *User) HasRole(role Role) bool {
	for _, r := range u.roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) HasEmail(email Email) bool {
	return u.email == email
}

func (u *User) Equals(other *User) bool {
	return other != nil && u.id == other.id
}
