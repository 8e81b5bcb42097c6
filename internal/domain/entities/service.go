package entities

import "time"

// Gender restricts who a service is offered to. Both is the default.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderBoth   Gender = "both"
)

func ValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderBoth:
		return true
	default:
		return false
	}
}

// Service is a provider-owned catalog item. Several providers may offer
// services with the same name; the request fan-out resolves providers by
// matching active services on name.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//   - GSI2 (name-index): name
type Service struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	CategoryID  string    `json:"category_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Gender      Gender    `json:"gender,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
