package interfaces

import (
	"context"

	"servineta/internal/domain/entities"
)

//go:generate mockgen -source=category_repository_interface.go -destination=mocks/mock_category_repository.go -package=mocks

// ICategoryRepository abstracts DynamoDB persistence for Category.
type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	Update(ctx context.Context, c entities.Category) (entities.Category, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Category, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]entities.Category, string, error)
	ListActive(ctx context.Context) ([]entities.Category, error)
}
