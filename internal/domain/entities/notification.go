package entities

import (
	"fmt"
	"time"
)

// QuotationNotice is the denormalized snapshot attached to a quotation
// notification. It captures names, price and schedule at the moment of the
// transition; later edits to the source entities never change it.
type QuotationNotice struct {
	Type             string  `json:"type"`
	QuotationID      string  `json:"quotation_id"`
	ServiceRequestID string  `json:"service_request_id"`
	ServiceName      string  `json:"service_name"`
	ProviderName     string  `json:"provider_name"`
	Price            float64 `json:"price"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
}

// NewQuotationNotice freezes the quotation submission into a notice value.
func NewQuotationNotice(q Quotation, r ServiceRequest, serviceName, providerName string, price float64) QuotationNotice {
	return QuotationNotice{
		Type:             "quotation",
		QuotationID:      q.ID,
		ServiceRequestID: r.ID,
		ServiceName:      serviceName,
		ProviderName:     providerName,
		Price:            price,
		Date:             r.Date,
		Time:             r.Time,
	}
}

// Message renders the client-facing notification body.
func (n QuotationNotice) Message() string {
	return fmt.Sprintf("You received a new quotation from %s for %s at $%.2f.", n.ProviderName, n.ServiceName, n.Price)
}

// Notification is an in-app message for a user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Notification struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	AdditionalData *QuotationNotice `json:"additional_data,omitempty"`
	IsRead         bool             `json:"is_read"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
