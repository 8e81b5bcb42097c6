package interfaces

import (
	"context"

	"servineta/internal/domain/entities"
)

//go:generate mockgen -source=quotation_repository_interface.go -destination=mocks/mock_quotation_repository.go -package=mocks

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// Accept applies the three writes of the accept transition (target
// quotation to accepted, every sibling to rejected, parent request to hired)
// in a single TransactWriteItems call. The target write carries a
// status = quoted condition, so a raced second accept fails the whole
// transaction with ErrConditionFailed and leaves state untouched.
type IQuotationRepository interface {
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Quotation, error)
	ListByProviderID(ctx context.Context, providerID string, f ListFilter) ([]entities.Quotation, string, error)
	SubmitPrice(ctx context.Context, id string, price float64, observations string) (entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
	Rate(ctx context.Context, id string, rating int, comment string) (entities.Quotation, error)
	Accept(ctx context.Context, requestID, quotationID string, siblingIDs []string) error
}
