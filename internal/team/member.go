package team

import (
	"time"

	"github.com/neonmart/neonmart-backend/pkg/enums"
)

// Member is an admin-console account. The password is stored and compared in
// plain text; that is the documented contract of this system.
type Member struct {
	ID        int64          `json:"id"`
	Username  string         `json:"username"`
	Password  string         `json:"password"`
	Role      enums.TeamRole `json:"role"`
	CreatedAt time.Time      `json:"createdAt"`
	CreatedBy string         `json:"createdBy,omitempty"`
}

// IsHost reports whether the member holds the single non-deletable host role.
func (m Member) IsHost() bool {
	return m.Role == enums.TeamRoleHost
}
