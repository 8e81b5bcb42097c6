package request

// ServicePayload is a provider's create/update body. It binds from JSON or
// from a multipart form; image file parts are read by the handler under the
// "images" key. Name and Price are only enforced on create, so updates can
// send a partial payload.
type ServicePayload struct {
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price"`
	CategoryID  string   `json:"category_id" form:"category_id"`
	Gender      string   `json:"gender" form:"gender"`
	Active      *bool    `json:"active" form:"active"`
}
