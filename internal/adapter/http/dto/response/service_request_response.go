package response

import (
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase"
)

type ServiceRequestResponse struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id"`
	ServiceID        string    `json:"service_id"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Location         string    `json:"location"`
	Observations     string    `json:"observations,omitempty"`
	ReferenceImageID string    `json:"reference_image_id,omitempty"`
	Status           string    `json:"status"`
	Validity         string    `json:"validity_status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:               r.ID,
		ClientID:         r.ClientID,
		ServiceID:        r.ServiceID,
		Date:             r.Date,
		Time:             r.Time,
		Location:         r.Location,
		Observations:     r.Observations,
		ReferenceImageID: r.ReferenceImageID,
		Status:           string(r.Status),
		Validity:         string(r.Validity),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

type QuotationResponse struct {
	ID                   string    `json:"id"`
	ServiceRequestID     string    `json:"service_request_id"`
	ProviderID           string    `json:"provider_id"`
	Price                *float64  `json:"price,omitempty"`
	ProviderObservations string    `json:"provider_observations,omitempty"`
	Status               string    `json:"status"`
	Rating               *int      `json:"rating,omitempty"`
	RatingComment        string    `json:"rating_comment,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:                   q.ID,
		ServiceRequestID:     q.ServiceRequestID,
		ProviderID:           q.ProviderID,
		Price:                q.Price,
		ProviderObservations: q.ProviderObservations,
		Status:               string(q.Status),
		Rating:               q.Rating,
		RatingComment:        q.RatingComment,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
	}
}

type CreatedRequestResponse struct {
	Request    ServiceRequestResponse `json:"request"`
	Quotations []QuotationResponse    `json:"quotations"`
}

func FromCreatedRequest(c usecase.CreatedRequest) CreatedRequestResponse {
	quotations := make([]QuotationResponse, 0, len(c.Quotations))
	for _, q := range c.Quotations {
		quotations = append(quotations, FromQuotation(q))
	}
	return CreatedRequestResponse{Request: FromServiceRequest(c.Request), Quotations: quotations}
}

type RequestListItemResponse struct {
	Request        ServiceRequestResponse `json:"request"`
	Service        ServiceResponse        `json:"service"`
	QuotationCount int                    `json:"quotation_count"`
}

type RequestListResponse struct {
	Items      []RequestListItemResponse `json:"items"`
	NextCursor string                    `json:"next_cursor,omitempty"`
}

func FromRequestListItems(items []usecase.RequestListItem, cursor string) RequestListResponse {
	out := make([]RequestListItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, RequestListItemResponse{
			Request:        FromServiceRequest(it.Request),
			Service:        FromService(it.Service),
			QuotationCount: it.QuotationCount,
		})
	}
	return RequestListResponse{Items: out, NextCursor: cursor}
}

type ProviderQuotationItemResponse struct {
	Quotation QuotationResponse      `json:"quotation"`
	Request   ServiceRequestResponse `json:"request"`
	Service   ServiceResponse        `json:"service"`
}

type ProviderQuotationListResponse struct {
	Items      []ProviderQuotationItemResponse `json:"items"`
	NextCursor string                          `json:"next_cursor,omitempty"`
}

func FromProviderQuotationItems(items []usecase.ProviderQuotationItem, cursor string) ProviderQuotationListResponse {
	out := make([]ProviderQuotationItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ProviderQuotationItemResponse{
			Quotation: FromQuotation(it.Quotation),
			Request:   FromServiceRequest(it.Request),
			Service:   FromService(it.Service),
		})
	}
	return ProviderQuotationListResponse{Items: out, NextCursor: cursor}
}

type QuotationWithProviderResponse struct {
	Quotation QuotationResponse `json:"quotation"`
	Provider  UserResponse      `json:"provider"`
}

type RequestQuotationsResponse struct {
	Items []QuotationWithProviderResponse `json:"items"`
}

func FromQuotationListItems(items []usecase.QuotationListItem) RequestQuotationsResponse {
	out := make([]QuotationWithProviderResponse, 0, len(items))
	for _, it := range items {
		out = append(out, QuotationWithProviderResponse{
			Quotation: FromQuotation(it.Quotation),
			Provider:  FromUser(it.Provider),
		})
	}
	return RequestQuotationsResponse{Items: out}
}
