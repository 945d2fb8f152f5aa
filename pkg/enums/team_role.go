package enums

import "fmt"

// TeamRole represents an admin-console permissions role.
type TeamRole string

const (
	TeamRoleHost   TeamRole = "host"
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleEditor TeamRole = "editor"
)

var validTeamRoles = []TeamRole{
	TeamRoleHost,
	TeamRoleAdmin,
	TeamRoleEditor,
}

// String implements fmt.Stringer.
func (r TeamRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known TeamRole.
func (r TeamRole) IsValid() bool {
	for _, candidate := range validTeamRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseTeamRole converts raw input into a TeamRole.
func ParseTeamRole(value string) (TeamRole, error) {
	for _, candidate := range validTeamRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid team role %q", value)
}
