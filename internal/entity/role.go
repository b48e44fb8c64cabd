package entity

// Role is a closed set of operator capability tags.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleUser:
		return Role(raw), nil
	default:
		return "", InvalidRoleError{Role: raw}
	}
}

// ParseRoles validates a set of raw role strings, deduplicating as it goes.
func ParseRoles(raw []string) ([]Role, error) {
	seen := make(map[Role]bool, len(raw))
	roles := make([]Role, 0, len(raw))
	for _, r := range raw {
		role, err := ParseRole(r)
		if err != nil {
			return nil, err
		}
		if seen[role] {
			continue
		}
		seen[role] = true
		roles = append(roles, role)
	}
	return roles, nil
}
