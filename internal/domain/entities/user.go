package entities

import "time"

// Role is the coarse access level assigned to a user account.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// User is a marketplace account. The same account can act as a client
// (creating service requests) and as a provider (owning services and
// answering quotations); there is no separate provider entity.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Role             Role      `json:"role"`
	Active           bool      `json:"active"`
	ProfilePictureID string    `json:"profile_picture_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
