package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotServiceOwner     = errors.New("caller does not own this service")
	ErrServiceUnavailable  = errors.New("service is not available")
	ErrInvalidServiceInput = errors.New("invalid service input")
	ErrFileNotFound        = errors.New("file not found")
	ErrFileNotAttached     = errors.New("file does not belong to this service")
)

// ServiceInput carries a provider's create/update payload.
type ServiceInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  string
	Gender      entities.Gender
	Active      *bool
	Images      []UploadInput
}

// ServiceWithImages is a catalog row with its attached image records.
type ServiceWithImages struct {
	Service entities.Service      `json:"service"`
	Images  []entities.StoredFile `json:"images"`
}

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/mock_catalog_usecase.go -package=mocks
// ICatalogUseCase covers a provider's own services and the public catalog
// of active ones.
type ICatalogUseCase interface {
	CreateService(ctx context.Context, ownerID string, in ServiceInput) (ServiceWithImages, error)
	UpdateService(ctx context.Context, ownerID, serviceID string, in ServiceInput) (ServiceWithImages, error)
	DeleteService(ctx context.Context, ownerID, serviceID string) error
	ToggleService(ctx context.Context, ownerID, serviceID string) (entities.Service, error)
	GetService(ctx context.Context, callerID, serviceID string) (ServiceWithImages, error)
	ListOwn(ctx context.Context, ownerID string, f interfaces.ServiceFilter) ([]ServiceWithImages, string, error)
	Catalog(ctx context.Context, f interfaces.ServiceFilter) ([]ServiceWithImages, string, error)
	DeleteServiceImage(ctx context.Context, ownerID, serviceID, fileID string) error
}

type CatalogUseCase struct {
	services  interfaces.IServiceRepository
	files     interfaces.IFileRepository
	fileStore interfaces.IFileStore
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(services interfaces.IServiceRepository, files interfaces.IFileRepository, fileStore interfaces.IFileStore) *CatalogUseCase {
	return &CatalogUseCase{services: services, files: files, fileStore: fileStore}
}

func (u *CatalogUseCase) CreateService(ctx context.Context, ownerID string, in ServiceInput) (ServiceWithImages, error) {
	ownerID = strings.TrimSpace(ownerID)
	in.Name = strings.TrimSpace(in.Name)
	if ownerID == "" || in.Name == "" || in.Price < 0 {
		return ServiceWithImages{}, ErrInvalidServiceInput
	}
	gender := in.Gender
	if gender == "" {
		gender = entities.GenderBoth
	}
	if !entities.ValidGender(gender) {
		return ServiceWithImages{}, ErrInvalidServiceInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	now := time.Now().UTC()
	svc, err := u.services.Create(ctx, entities.Service{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		CategoryID:  strings.TrimSpace(in.CategoryID),
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Gender:      gender,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return ServiceWithImages{}, err
	}

	images := u.storeServiceImages(ctx, svc.ID, in.Images)
	return ServiceWithImages{Service: svc, Images: images}, nil
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, ownerID, serviceID string, in ServiceInput) (ServiceWithImages, error) {
	svc, err := u.ownedService(ctx, ownerID, serviceID)
	if err != nil {
		return ServiceWithImages{}, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		svc.Name = name
	}
	if in.Description != "" {
		svc.Description = strings.TrimSpace(in.Description)
	}
	if in.Price > 0 {
		svc.Price = in.Price
	}
	if in.CategoryID != "" {
		svc.CategoryID = strings.TrimSpace(in.CategoryID)
	}
	if in.Gender != "" {
		if !entities.ValidGender(in.Gender) {
			return ServiceWithImages{}, ErrInvalidServiceInput
		}
		svc.Gender = in.Gender
	}
	if in.Active != nil {
		svc.Active = *in.Active
	}
	svc.UpdatedAt = time.Now().UTC()

	updated, err := u.services.Update(ctx, svc)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return ServiceWithImages{}, ErrServiceNotFound
		}
		return ServiceWithImages{}, err
	}

	u.storeServiceImages(ctx, updated.ID, in.Images)
	existing, err := u.files.ListByOwner(ctx, entities.FileOwnerService, updated.ID)
	if err != nil {
		return ServiceWithImages{}, err
	}
	return ServiceWithImages{Service: updated, Images: existing}, nil
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, ownerID, serviceID string) error {
	svc, err := u.ownedService(ctx, ownerID, serviceID)
	if err != nil {
		return err
	}
	return u.services.Delete(ctx, svc.ID)
}

func (u *CatalogUseCase) ToggleService(ctx context.Context, ownerID, serviceID string) (entities.Service, error) {
	svc, err := u.ownedService(ctx, ownerID, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	toggled, err := u.services.SetActive(ctx, svc.ID, !svc.Active)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Service{}, ErrServiceNotFound
		}
		return entities.Service{}, err
	}
	return toggled, nil
}

// GetService shows a service to its owner always, and to anyone else only
// while it is active.
func (u *CatalogUseCase) GetService(ctx context.Context, callerID, serviceID string) (ServiceWithImages, error) {
	serviceID = strings.TrimSpace(serviceID)
	svc, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return ServiceWithImages{}, err
	}
	if svc.ID == "" {
		return ServiceWithImages{}, ErrServiceNotFound
	}
	if svc.OwnerID != strings.TrimSpace(callerID) && !svc.Active {
		return ServiceWithImages{}, ErrServiceUnavailable
	}

	images, err := u.files.ListByOwner(ctx, entities.FileOwnerService, svc.ID)
	if err != nil {
		return ServiceWithImages{}, err
	}
	return ServiceWithImages{Service: svc, Images: images}, nil
}

func (u *CatalogUseCase) ListOwn(ctx context.Context, ownerID string, f interfaces.ServiceFilter) ([]ServiceWithImages, string, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, "", ErrNotServiceOwner
	}
	services, cursor, err := u.services.ListByOwnerID(ctx, ownerID, f)
	if err != nil {
		return nil, "", err
	}
	items, err := u.withImages(ctx, services)
	if err != nil {
		return nil, "", err
	}
	return items, cursor, nil
}

func (u *CatalogUseCase) Catalog(ctx context.Context, f interfaces.ServiceFilter) ([]ServiceWithImages, string, error) {
	services, cursor, err := u.services.ListActive(ctx, f)
	if err != nil {
		return nil, "", err
	}
	items, err := u.withImages(ctx, services)
	if err != nil {
		return nil, "", err
	}
	return items, cursor, nil
}

func (u *CatalogUseCase) DeleteServiceImage(ctx context.Context, ownerID, serviceID, fileID string) error {
	svc, err := u.ownedService(ctx, ownerID, serviceID)
	if err != nil {
		return err
	}

	file, err := u.files.GetByID(ctx, strings.TrimSpace(fileID))
	if err != nil {
		return err
	}
	if file.ID == "" {
		return ErrFileNotFound
	}
	if file.OwnerType != entities.FileOwnerService || file.OwnerID != svc.ID {
		return ErrFileNotAttached
	}

	if err := u.fileStore.Delete(ctx, file.Path); err != nil {
		log.Printf("[catalog][usecase] object delete failed file_id=%s path=%s err=%v", file.ID, file.Path, err)
	}
	return u.files.Delete(ctx, file.ID)
}

func (u *CatalogUseCase) ownedService(ctx context.Context, ownerID, serviceID string) (entities.Service, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	svc, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	if svc.OwnerID != strings.TrimSpace(ownerID) {
		return entities.Service{}, ErrNotServiceOwner
	}
	return svc, nil
}

// storeServiceImages uploads each image in its own error boundary; a
// failed upload is logged and skipped so the service write stands.
func (u *CatalogUseCase) storeServiceImages(ctx context.Context, serviceID string, images []UploadInput) []entities.StoredFile {
	stored := make([]entities.StoredFile, 0, len(images))
	for _, img := range images {
		path, err := u.fileStore.Upload(ctx, "service_images", img.Filename, img.ContentType, img.Body, img.Size)
		if err != nil {
			log.Printf("[catalog][usecase] image upload failed service_id=%s name=%s err=%v", serviceID, img.Filename, err)
			continue
		}
		now := time.Now().UTC()
		rec, err := u.files.Create(ctx, entities.StoredFile{
			ID:           uuid.NewString(),
			Path:         path,
			OriginalName: img.Filename,
			MimeType:     img.ContentType,
			Size:         img.Size,
			OwnerType:    entities.FileOwnerService,
			OwnerID:      serviceID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Printf("[catalog][usecase] image record failed service_id=%s name=%s err=%v", serviceID, img.Filename, err)
			continue
		}
		stored = append(stored, rec)
	}
	return stored
}

func (u *CatalogUseCase) withImages(ctx context.Context, services []entities.Service) ([]ServiceWithImages, error) {
	items := make([]ServiceWithImages, 0, len(services))
	for _, svc := range services {
		images, err := u.files.ListByOwner(ctx, entities.FileOwnerService, svc.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, ServiceWithImages{Service: svc, Images: images})
	}
	return items, nil
}
