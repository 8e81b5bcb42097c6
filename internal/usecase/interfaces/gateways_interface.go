package interfaces

import (
	"context"
	"io"
)

//go:generate mockgen -source=gateways_interface.go -destination=mocks/mock_gateways.go -package=mocks

// IFileStore abstracts object storage (S3). Upload returns the stored-path
// handle recorded on the owning entity.
type IFileStore interface {
	Upload(ctx context.Context, prefix, filename, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, path string) error
}

// IMailer abstracts outbound email (SES). Delivery is best-effort from the
// caller's point of view: usecases log failures and never surface them.
type IMailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
