package usecase

import (
	"context"
	"errors"
	"testing"

	"servineta/internal/domain/entities"
	mock_interfaces "servineta/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Beauty", "beauty"},
		{"Home & Garden", "home-garden"},
		{"  Sports   ", "sports"},
		{"Bem-Estar 24/7", "bem-estar-24-7"},
	}
	for _, c := range cases {
		if got := slugify(c.in); got != c.want {
			t.Fatalf("slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCategoryUseCase_Create(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewCategoryUseCase(nil)
		_, err := uc.Create(context.Background(), CategoryInput{Name: "   "})
		if !errors.Is(err, ErrInvalidCategoryInput) {
			t.Fatalf("expected ErrInvalidCategoryInput, got %v", err)
		}
	})

	t.Run("success derives the slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Category{})).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) {
				if c.ID == "" || c.Name != "Home & Garden" || c.Slug != "home-garden" || !c.Active {
					t.Fatalf("unexpected category: %+v", c)
				}
				return c, nil
			},
		)

		cat, err := uc.Create(context.Background(), CategoryInput{Name: " Home & Garden "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cat.Slug != "home-garden" {
			t.Fatalf("unexpected slug: %q", cat.Slug)
		}
	})
}

func TestCategoryUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Category{}, nil)

		_, err := uc.Update(context.Background(), "ghost", CategoryInput{Name: "Beauty"})
		if !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("renaming refreshes the slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(entities.Category{ID: "cat-1", Name: "Beauty", Slug: "beauty", Active: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Category{})).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) {
				if c.Name != "Hair Care" || c.Slug != "hair-care" {
					t.Fatalf("unexpected update: %+v", c)
				}
				return c, nil
			},
		)

		cat, err := uc.Update(context.Background(), "cat-1", CategoryInput{Name: "Hair Care"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cat.Slug != "hair-care" {
			t.Fatalf("unexpected slug: %q", cat.Slug)
		}
	})
}

func TestCategoryUseCase_Toggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICategoryRepository(ctrl)
	uc := NewCategoryUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "cat-1").Return(entities.Category{ID: "cat-1", Active: true}, nil)
	repo.EXPECT().SetActive(gomock.Any(), "cat-1", false).Return(entities.Category{ID: "cat-1", Active: false}, nil)

	cat, err := uc.Toggle(context.Background(), "cat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Active {
		t.Fatalf("expected deactivated category")
	}
}
