package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrInvalidCategoryInput = errors.New("invalid category input")
)

// CategoryInput carries an admin's create/update payload.
type CategoryInput struct {
	Name        string
	Description string
	Active      *bool
}

//go:generate mockgen -source=category_usecase.go -destination=../adapter/http/handlers/mocks/mock_category_usecase.go -package=mocks
type ICategoryUseCase interface {
	Create(ctx context.Context, in CategoryInput) (entities.Category, error)
	Update(ctx context.Context, id string, in CategoryInput) (entities.Category, error)
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) (entities.Category, error)
	List(ctx context.Context, f interfaces.ListFilter) ([]entities.Category, string, error)
	ListActive(ctx context.Context) ([]entities.Category, error)
}

type CategoryUseCase struct {
	categories interfaces.ICategoryRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(categories interfaces.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

func (u *CategoryUseCase) Create(ctx context.Context, in CategoryInput) (entities.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Category{}, ErrInvalidCategoryInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	now := time.Now().UTC()
	return u.categories.Create(ctx, entities.Category{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        slugify(in.Name),
		Description: strings.TrimSpace(in.Description),
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (u *CategoryUseCase) Update(ctx context.Context, id string, in CategoryInput) (entities.Category, error) {
	cat, err := u.get(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Category{}, ErrInvalidCategoryInput
	}

	if in.Name != cat.Name {
		cat.Slug = slugify(in.Name)
	}
	cat.Name = in.Name
	cat.Description = strings.TrimSpace(in.Description)
	if in.Active != nil {
		cat.Active = *in.Active
	}
	cat.UpdatedAt = time.Now().UTC()

	updated, err := u.categories.Update(ctx, cat)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Category{}, ErrCategoryNotFound
		}
		return entities.Category{}, err
	}
	return updated, nil
}

func (u *CategoryUseCase) Delete(ctx context.Context, id string) error {
	cat, err := u.get(ctx, id)
	if err != nil {
		return err
	}
	return u.categories.Delete(ctx, cat.ID)
}

func (u *CategoryUseCase) Toggle(ctx context.Context, id string) (entities.Category, error) {
	cat, err := u.get(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	toggled, err := u.categories.SetActive(ctx, cat.ID, !cat.Active)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Category{}, ErrCategoryNotFound
		}
		return entities.Category{}, err
	}
	return toggled, nil
}

func (u *CategoryUseCase) List(ctx context.Context, f interfaces.ListFilter) ([]entities.Category, string, error) {
	return u.categories.List(ctx, f)
}

func (u *CategoryUseCase) ListActive(ctx context.Context) ([]entities.Category, error) {
	return u.categories.ListActive(ctx)
}

func (u *CategoryUseCase) get(ctx context.Context, id string) (entities.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	cat, err := u.categories.GetByID(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if cat.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	return cat, nil
}

// slugify lowercases the name and joins words with dashes. Non-alphanumeric
// runes collapse into a single separator.
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
