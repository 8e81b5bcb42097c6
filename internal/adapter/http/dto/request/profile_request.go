package request

import "strings"

// UpdateProfileRequest edits the caller's own account. The password pair is
// optional; when new_password is present, current_password must verify.
type UpdateProfileRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r UpdateProfileRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}
