package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"
	mock_interfaces "servineta/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type catalogMocks struct {
	services  *mock_interfaces.MockIServiceRepository
	files     *mock_interfaces.MockIFileRepository
	fileStore *mock_interfaces.MockIFileStore
}

func newCatalogUseCase(ctrl *gomock.Controller) (*CatalogUseCase, catalogMocks) {
	m := catalogMocks{
		services:  mock_interfaces.NewMockIServiceRepository(ctrl),
		files:     mock_interfaces.NewMockIFileRepository(ctrl),
		fileStore: mock_interfaces.NewMockIFileStore(ctrl),
	}
	return NewCatalogUseCase(m.services, m.files, m.fileStore), m
}

func TestCatalogUseCase_CreateService(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCatalogUseCase(ctrl)

		_, err := uc.CreateService(context.Background(), "prov-1", ServiceInput{Name: "Haircut", Price: -1})
		if !errors.Is(err, ErrInvalidServiceInput) {
			t.Fatalf("expected ErrInvalidServiceInput, got %v", err)
		}
	})

	t.Run("defaults gender and active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCatalogUseCase(ctrl)

		m.services.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" || s.OwnerID != "prov-1" || s.Name != "Haircut" {
					t.Fatalf("unexpected service: %+v", s)
				}
				if s.Gender != entities.GenderBoth || !s.Active {
					t.Fatalf("expected defaults, got gender=%s active=%v", s.Gender, s.Active)
				}
				return s, nil
			},
		)

		res, err := uc.CreateService(context.Background(), "prov-1", ServiceInput{Name: " Haircut ", Price: 80})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Service.Name != "Haircut" {
			t.Fatalf("unexpected result: %+v", res.Service)
		}
	})

	t.Run("failed image upload is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCatalogUseCase(ctrl)

		m.services.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) { return s, nil },
		)
		m.fileStore.EXPECT().Upload(gomock.Any(), "service_images", "a.jpg", "image/jpeg", gomock.Any(), int64(10)).Return("", errors.New("s3 down"))
		m.fileStore.EXPECT().Upload(gomock.Any(), "service_images", "b.jpg", "image/jpeg", gomock.Any(), int64(20)).Return("service_images/b.jpg", nil)
		m.files.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.StoredFile{})).DoAndReturn(
			func(_ context.Context, f entities.StoredFile) (entities.StoredFile, error) {
				if f.Path != "service_images/b.jpg" || f.OwnerType != entities.FileOwnerService {
					t.Fatalf("unexpected file: %+v", f)
				}
				return f, nil
			},
		)

		res, err := uc.CreateService(context.Background(), "prov-1", ServiceInput{
			Name:  "Haircut",
			Price: 80,
			Images: []UploadInput{
				{Filename: "a.jpg", ContentType: "image/jpeg", Size: 10, Body: strings.NewReader("aa")},
				{Filename: "b.jpg", ContentType: "image/jpeg", Size: 20, Body: strings.NewReader("bb")},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Images) != 1 {
			t.Fatalf("expected 1 stored image, got %d", len(res.Images))
		}
	})
}

func TestCatalogUseCase_UpdateService(t *testing.T) {
	owned := entities.Service{ID: "svc-1", OwnerID: "prov-1", Name: "Haircut", Price: 80, Gender: entities.GenderBoth, Active: true}

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCatalogUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(owned, nil)

		_, err := uc.UpdateService(context.Background(), "prov-2", "svc-1", ServiceInput{Name: "Beard trim"})
		if !errors.Is(err, ErrNotServiceOwner) {
			t.Fatalf("expected ErrNotServiceOwner, got %v", err)
		}
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCatalogUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(owned, nil)
		m.services.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Name != "Beard trim" || s.Price != 80 {
					t.Fatalf("unexpected update: %+v", s)
				}
				return s, nil
			},
		)
		m.files.EXPECT().ListByOwner(gomock.Any(), entities.FileOwnerService, "svc-1").Return(nil, nil)

		res, err := uc.UpdateService(context.Background(), "prov-1", "svc-1", ServiceInput{Name: "Beard trim"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Service.Name != "Beard trim" {
			t.Fatalf("unexpected result: %+v", res.Service)
		}
	})
}

func TestCatalogUseCase_GetService(t *testing.T) {
	inactive := entities.Service{ID: "svc-1", OwnerID: "prov-1", Name: "Haircut", Active: false}

	t.Run("hidden from strangers while inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCatalogUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(inactive, nil)

		_, err := uc.GetService(context.Background(), "client-9", "svc-1")
		if !errors.Is(err, ErrServiceUnavailable) {
			t.Fatalf("expected ErrServiceUnavailable, got %v", err)
		}
	})

	t.Run("owner still sees it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCatalogUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(inactive, nil)
		m.files.EXPECT().ListByOwner(gomock.Any(), entities.FileOwnerService, "svc-1").Return([]entities.StoredFile{{ID: "f-1"}}, nil)

		res, err := uc.GetService(context.Background(), "prov-1", "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Images) != 1 {
			t.Fatalf("expected 1 image, got %d", len(res.Images))
		}
	})
}

func TestCatalogUseCase_DeleteServiceImage(t *testing.T) {
	owned := entities.Service{ID: "svc-1", OwnerID: "prov-1", Active: true}

	t.Run("file belongs to another service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCatalogUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(owned, nil)
		m.files.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.StoredFile{ID: "f-1", OwnerType: entities.FileOwnerService, OwnerID: "svc-other"}, nil)

		err := uc.DeleteServiceImage(context.Background(), "prov-1", "svc-1", "f-1")
		if !errors.Is(err, ErrFileNotAttached) {
			t.Fatalf("expected ErrFileNotAttached, got %v", err)
		}
	})

	t.Run("object store failure still removes the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCatalogUseCase(ctrl)

		file := entities.StoredFile{ID: "f-1", Path: "service_images/x.jpg", OwnerType: entities.FileOwnerService, OwnerID: "svc-1"}
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(owned, nil)
		m.files.EXPECT().GetByID(gomock.Any(), "f-1").Return(file, nil)
		m.fileStore.EXPECT().Delete(gomock.Any(), "service_images/x.jpg").Return(errors.New("s3 down"))
		m.files.EXPECT().Delete(gomock.Any(), "f-1").Return(nil)

		if err := uc.DeleteServiceImage(context.Background(), "prov-1", "svc-1", "f-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_Catalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newCatalogUseCase(ctrl)

	f := interfaces.ServiceFilter{CategoryID: "cat-1", Limit: 10}
	m.services.EXPECT().ListActive(gomock.Any(), f).Return([]entities.Service{
		{ID: "svc-1", Active: true},
		{ID: "svc-2", Active: true},
	}, "next-cursor", nil)
	m.files.EXPECT().ListByOwner(gomock.Any(), entities.FileOwnerService, "svc-1").Return(nil, nil)
	m.files.EXPECT().ListByOwner(gomock.Any(), entities.FileOwnerService, "svc-2").Return([]entities.StoredFile{{ID: "f-1"}}, nil)

	items, cursor, err := uc.Catalog(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cursor != "next-cursor" {
		t.Fatalf("expected cursor passthrough, got %q", cursor)
	}
	if len(items) != 2 || len(items[1].Images) != 1 {
		t.Fatalf("unexpected items: %+v", items)
	}
}
