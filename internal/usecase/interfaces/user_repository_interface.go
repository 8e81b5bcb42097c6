package interfaces

import (
	"context"

	"servineta/internal/domain/entities"
)

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/mock_user_repository.go -package=mocks

// IUserRepository abstracts DynamoDB persistence for User.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	SetActive(ctx context.Context, id string, active bool) (entities.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]entities.User, string, error)
}
