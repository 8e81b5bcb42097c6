package response

import (
	"testing"
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase"
)

func TestFromQuotation(t *testing.T) {
	now := time.Now().UTC()
	price := 150.0
	five := 5
	q := entities.Quotation{
		ID:                   "q-1",
		ServiceRequestID:     "req-1",
		ProviderID:           "prov-1",
		Price:                &price,
		ProviderObservations: "brings own tools",
		Status:               entities.QuotationStatusAccepted,
		Rating:               &five,
		RatingComment:        "great work",
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	res := FromQuotation(q)
	if res.ID != "q-1" || res.ServiceRequestID != "req-1" || res.ProviderID != "prov-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Price == nil || *res.Price != 150.0 || res.Status != "accepted" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Rating == nil || *res.Rating != 5 || res.RatingComment != "great work" {
		t.Fatalf("unexpected rating fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromCreatedRequest(t *testing.T) {
	c := usecase.CreatedRequest{
		Request: entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPending, Validity: entities.ValidityCurrent},
		Quotations: []entities.Quotation{
			{ID: "q-1", Status: entities.QuotationStatusPending},
			{ID: "q-2", Status: entities.QuotationStatusPending},
		},
	}

	res := FromCreatedRequest(c)
	if res.Request.ID != "req-1" || res.Request.Status != "pending" || res.Request.Validity != "current" {
		t.Fatalf("unexpected request: %+v", res.Request)
	}
	if len(res.Quotations) != 2 || res.Quotations[0].ID != "q-1" {
		t.Fatalf("unexpected quotations: %+v", res.Quotations)
	}
}

func TestFromRequestListItems(t *testing.T) {
	items := []usecase.RequestListItem{
		{
			Request:        entities.ServiceRequest{ID: "req-1"},
			Service:        entities.Service{ID: "svc-1", Name: "Haircut"},
			QuotationCount: 3,
		},
	}

	res := FromRequestListItems(items, "next")
	if len(res.Items) != 1 || res.Items[0].Service.Name != "Haircut" || res.Items[0].QuotationCount != 3 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.NextCursor != "next" {
		t.Fatalf("expected cursor passthrough, got %q", res.NextCursor)
	}
}
