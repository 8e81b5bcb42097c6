package interfaces

import (
	"context"

	"servineta/internal/domain/entities"
)

//go:generate mockgen -source=service_repository_interface.go -destination=mocks/mock_service_repository.go -package=mocks

// ServiceFilter narrows catalog and owner listings.
type ServiceFilter struct {
	Search     string
	CategoryID string
	Gender     string
	Active     string // "active", "inactive" or empty for all
	Limit      int32
	Cursor     string
}

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// ListActiveByName backs the request fan-out: every active service whose
// name equals the requested one, across all providers.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) (entities.Service, error)
	ListByOwnerID(ctx context.Context, ownerID string, f ServiceFilter) ([]entities.Service, string, error)
	ListActive(ctx context.Context, f ServiceFilter) ([]entities.Service, string, error)
	ListActiveByName(ctx context.Context, name string) ([]entities.Service, error)
}
