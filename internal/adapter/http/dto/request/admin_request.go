package request

type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

// AdminUserPayload is the admin panel's create/update body. Password is
// optional: creations without one get a generated password mailed to the
// new account.
type AdminUserPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
	Active   *bool  `json:"active"`
}
