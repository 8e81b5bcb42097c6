package entities

import "time"

// FileOwner names the kind of entity a stored file is attached to.
type FileOwner string

const (
	FileOwnerService        FileOwner = "service"
	FileOwnerServiceRequest FileOwner = "service_request"
	FileOwnerUser           FileOwner = "user"
)

// StoredFile records an uploaded object (service image, request reference
// image, profile picture). Path is the handle returned by the file store.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner-index): owner_type + owner_id
type StoredFile struct {
	ID           string    `json:"id"`
	Path         string    `json:"path"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	OwnerType    FileOwner `json:"owner_type"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
