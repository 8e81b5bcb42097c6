package entities

import "time"

// QuotationStatus is the lifecycle state of one provider's offer.
//
// Transitions:
//
//	pending --(provider submits price)--> quoted
//	quoted  --(client accepts)--> accepted   [siblings -> rejected, request -> hired]
//	pending|quoted --(client rejects)--> rejected
//
// At most one quotation per service request ever reaches accepted; the
// accept write, the sibling rejections and the parent status change commit
// as one transaction.
type QuotationStatus string

const (
	QuotationStatusPending   QuotationStatus = "pending"
	QuotationStatusQuoted    QuotationStatus = "quoted"
	QuotationStatusAccepted  QuotationStatus = "accepted"
	QuotationStatusRejected  QuotationStatus = "rejected"
	QuotationStatusCancelled QuotationStatus = "cancelled"
)

func ValidQuotationStatus(s QuotationStatus) bool {
	switch s {
	case QuotationStatusPending, QuotationStatusQuoted, QuotationStatusAccepted,
		QuotationStatusRejected, QuotationStatusCancelled:
		return true
	default:
		return false
	}
}

// Quotation is one provider's offer against a service request. Exactly one
// quotation per (request, provider) pair is created at request time.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_request_id-index): service_request_id
//   - GSI2 (provider_id-index): provider_id
type Quotation struct {
	ID                   string          `json:"id"`
	ServiceRequestID     string          `json:"service_request_id"`
	ProviderID           string          `json:"provider_id"`
	Price                *float64        `json:"price,omitempty"`
	ProviderObservations string          `json:"provider_observations,omitempty"`
	Status               QuotationStatus `json:"status"`
	Rating               *int            `json:"rating,omitempty"`
	RatingComment        string          `json:"rating_comment,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// Quotable reports whether a provider may still submit or revise a price.
func (q Quotation) Quotable() bool {
	return q.Status == QuotationStatusPending || q.Status == QuotationStatusQuoted
}
