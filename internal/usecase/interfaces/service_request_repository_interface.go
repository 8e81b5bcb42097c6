package interfaces

import (
	"context"

	"servineta/internal/domain/entities"
)

//go:generate mockgen -source=service_request_repository_interface.go -destination=mocks/mock_service_request_repository.go -package=mocks

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// CreateWithQuotations writes the request and its fan-out quotations in one
// TransactWriteItems call: either the whole aggregate exists afterwards or
// none of it does.
type IServiceRequestRepository interface {
	CreateWithQuotations(ctx context.Context, r entities.ServiceRequest, quotations []entities.Quotation) error
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error)
	ListByClientID(ctx context.Context, clientID string, f ListFilter) ([]entities.ServiceRequest, string, error)
}
