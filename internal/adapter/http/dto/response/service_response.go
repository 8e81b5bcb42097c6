package response

import (
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase"
)

type ServiceResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	CategoryID  string    `json:"category_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Gender      string    `json:"gender,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Gender:      string(s.Gender),
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type FileResponse struct {
	ID           string `json:"id"`
	Path         string `json:"path"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
}

func FromFile(f entities.StoredFile) FileResponse {
	return FileResponse{
		ID:           f.ID,
		Path:         f.Path,
		OriginalName: f.OriginalName,
		MimeType:     f.MimeType,
		Size:         f.Size,
	}
}

type ServiceWithImagesResponse struct {
	Service ServiceResponse `json:"service"`
	Images  []FileResponse  `json:"images"`
}

func FromServiceWithImages(s usecase.ServiceWithImages) ServiceWithImagesResponse {
	images := make([]FileResponse, 0, len(s.Images))
	for _, f := range s.Images {
		images = append(images, FromFile(f))
	}
	return ServiceWithImagesResponse{Service: FromService(s.Service), Images: images}
}

type ServiceListResponse struct {
	Items      []ServiceWithImagesResponse `json:"items"`
	NextCursor string                      `json:"next_cursor,omitempty"`
}

func FromServicesWithImages(services []usecase.ServiceWithImages, cursor string) ServiceListResponse {
	items := make([]ServiceWithImagesResponse, 0, len(services))
	for _, s := range services {
		items = append(items, FromServiceWithImages(s))
	}
	return ServiceListResponse{Items: items, NextCursor: cursor}
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromCategory(c entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type CategoryListResponse struct {
	Items      []CategoryResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromCategories(categories []entities.Category, cursor string) CategoryListResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, FromCategory(c))
	}
	return CategoryListResponse{Items: items, NextCursor: cursor}
}
