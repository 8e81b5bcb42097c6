package interfaces

import (
	"context"

	"servineta/internal/domain/entities"
)

//go:generate mockgen -source=file_repository_interface.go -destination=mocks/mock_file_repository.go -package=mocks

// IFileRepository abstracts DynamoDB persistence for StoredFile records.
// The bytes themselves live in the file store; this tracks the association.
type IFileRepository interface {
	Create(ctx context.Context, f entities.StoredFile) (entities.StoredFile, error)
	GetByID(ctx context.Context, id string) (entities.StoredFile, error)
	ListByOwner(ctx context.Context, ownerType entities.FileOwner, ownerID string) ([]entities.StoredFile, error)
	Delete(ctx context.Context, id string) error
}
