package request

// CreateServiceRequestRequest is the client submission. It binds from JSON
// or from a multipart form; the optional reference image travels as the
// "reference_image" file part and is read by the handler.
type CreateServiceRequestRequest struct {
	ServiceID    string `json:"service_id" form:"service_id" binding:"required"`
	Date         string `json:"date" form:"date" binding:"required"`
	Time         string `json:"time" form:"time" binding:"required"`
	Location     string `json:"location" form:"location" binding:"required"`
	Observations string `json:"observations" form:"observations"`
}

type SubmitQuotationRequest struct {
	Price        *float64 `json:"price" binding:"required"`
	Observations string   `json:"observations"`
}

type RateQuotationRequest struct {
	Rating  *int   `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
