package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrRequestNotFound        = errors.New("service request not found")
	ErrQuotationNotFound      = errors.New("quotation not found")
	ErrNoProvidersAvailable   = errors.New("no active providers offer this service")
	ErrNotRequestOwner        = errors.New("caller does not own this service request")
	ErrRequestClosed          = errors.New("service request is no longer open")
	ErrNotQuotationOwner      = errors.New("caller is not this quotation's provider")
	ErrQuotationNotQuotable   = errors.New("only pending or quoted quotations can be quoted")
	ErrQuotationNotAcceptable = errors.New("only quoted quotations can be accepted")
	ErrQuotationNotRejectable = errors.New("only pending or quoted quotations can be rejected")
	ErrQuotationNotRatable    = errors.New("only accepted quotations can be rated")
	ErrQuotationAlreadyRated  = errors.New("quotation is already rated")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrInvalidRequestInput    = errors.New("invalid service request input")
)

// UploadInput is an optional reference image attached at creation time.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// CreateRequestInput carries the client's submission.
type CreateRequestInput struct {
	ServiceID      string
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
	Location       string
	Observations   string
	ReferenceImage *UploadInput
}

// RequestListFilter narrows the client/provider request listings.
type RequestListFilter struct {
	Status     string
	Validity   string
	CategoryID string
	Search     string
	Limit      int32
	Cursor     string
}

// RequestListItem is a client-side listing row: the request plus the
// resolved service and how many quotations it fanned out to.
type RequestListItem struct {
	Request        entities.ServiceRequest `json:"request"`
	Service        entities.Service        `json:"service"`
	QuotationCount int                     `json:"quotation_count"`
}

// ProviderQuotationItem is a provider-side listing row: the provider's
// quotation plus the request and service it answers.
type ProviderQuotationItem struct {
	Quotation entities.Quotation      `json:"quotation"`
	Request   entities.ServiceRequest `json:"request"`
	Service   entities.Service        `json:"service"`
}

// QuotationListItem pairs a quotation with its provider for the client view.
type QuotationListItem struct {
	Quotation entities.Quotation `json:"quotation"`
	Provider  entities.User      `json:"provider"`
}

// CreatedRequest is the result of a successful fan-out creation.
type CreatedRequest struct {
	Request    entities.ServiceRequest `json:"request"`
	Quotations []entities.Quotation    `json:"quotations"`
}

//go:generate mockgen -source=request_lifecycle_usecase.go -destination=../adapter/http/handlers/mocks/mock_request_lifecycle_usecase.go -package=mocks
// IRequestLifecycleUseCase owns the service-request / quotation state
// machines: who may transition what, and the side effects that ride along
// with each transition.
type IRequestLifecycleUseCase interface {
	CreateRequest(ctx context.Context, clientID string, in CreateRequestInput) (CreatedRequest, error)
	SubmitQuotation(ctx context.Context, providerID, quotationID string, price float64, observations string) (entities.Quotation, error)
	AcceptQuotation(ctx context.Context, clientID, quotationID string) (entities.Quotation, error)
	RejectQuotation(ctx context.Context, clientID, quotationID string) (entities.Quotation, error)
	CancelRequest(ctx context.Context, clientID, requestID string) (entities.ServiceRequest, error)
	RateQuotation(ctx context.Context, clientID, quotationID string, rating int, comment string) (entities.Quotation, error)
	ListClientRequests(ctx context.Context, clientID string, f RequestListFilter) ([]RequestListItem, string, error)
	ListProviderQuotations(ctx context.Context, providerID string, f RequestListFilter) ([]ProviderQuotationItem, string, error)
	ListRequestQuotations(ctx context.Context, clientID, requestID string) ([]QuotationListItem, error)
}

type RequestLifecycleUseCase struct {
	requests      interfaces.IServiceRequestRepository
	quotations    interfaces.IQuotationRepository
	services      interfaces.IServiceRepository
	users         interfaces.IUserRepository
	notifications interfaces.INotificationRepository
	files         interfaces.IFileRepository
	fileStore     interfaces.IFileStore
	mailer        interfaces.IMailer

	now func() time.Time
}

var _ IRequestLifecycleUseCase = (*RequestLifecycleUseCase)(nil)

func NewRequestLifecycleUseCase(
	requests interfaces.IServiceRequestRepository,
	quotations interfaces.IQuotationRepository,
	services interfaces.IServiceRepository,
	users interfaces.IUserRepository,
	notifications interfaces.INotificationRepository,
	files interfaces.IFileRepository,
	fileStore interfaces.IFileStore,
	mailer interfaces.IMailer,
) *RequestLifecycleUseCase {
	return &RequestLifecycleUseCase{
		requests:      requests,
		quotations:    quotations,
		services:      services,
		users:         users,
		notifications: notifications,
		files:         files,
		fileStore:     fileStore,
		mailer:        mailer,
		now:           time.Now,
	}
}

// CreateRequest fans a client submission out to every active provider
// offering a service with the requested name. The request and its
// quotations are written as one transaction; when no provider matches,
// nothing is persisted. Provider emails are best-effort: a failed delivery
// is logged and never fails the creation.
func (u *RequestLifecycleUseCase) CreateRequest(ctx context.Context, clientID string, in CreateRequestInput) (CreatedRequest, error) {
	clientID = strings.TrimSpace(clientID)
	in.ServiceID = strings.TrimSpace(in.ServiceID)
	if clientID == "" || in.ServiceID == "" || strings.TrimSpace(in.Location) == "" {
		return CreatedRequest{}, ErrInvalidRequestInput
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return CreatedRequest{}, ErrInvalidRequestInput
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return CreatedRequest{}, ErrInvalidRequestInput
	}

	svc, err := u.services.GetByID(ctx, in.ServiceID)
	if err != nil {
		return CreatedRequest{}, err
	}
	if svc.ID == "" {
		return CreatedRequest{}, ErrServiceNotFound
	}

	offers, err := u.services.ListActiveByName(ctx, svc.Name)
	if err != nil {
		return CreatedRequest{}, err
	}
	providerIDs := distinctOwners(offers)
	if len(providerIDs) == 0 {
		return CreatedRequest{}, ErrNoProvidersAvailable
	}

	now := u.now().UTC()
	request := entities.ServiceRequest{
		ID:           uuid.NewString(),
		ClientID:     clientID,
		ServiceID:    svc.ID,
		Date:         in.Date,
		Time:         in.Time,
		Location:     strings.TrimSpace(in.Location),
		Observations: strings.TrimSpace(in.Observations),
		Status:       entities.RequestStatusPending,
		Validity:     entities.ValidityCurrent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var refImage *entities.StoredFile
	if in.ReferenceImage != nil {
		stored, err := u.attachReferenceImage(ctx, request.ID, *in.ReferenceImage)
		if err != nil {
			return CreatedRequest{}, err
		}
		refImage = &stored
		request.ReferenceImageID = stored.ID
	}

	quotations := make([]entities.Quotation, 0, len(providerIDs))
	for _, providerID := range providerIDs {
		quotations = append(quotations, entities.Quotation{
			ID:               uuid.NewString(),
			ServiceRequestID: request.ID,
			ProviderID:       providerID,
			Status:           entities.QuotationStatusPending,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	if err := u.requests.CreateWithQuotations(ctx, request, quotations); err != nil {
		if refImage != nil {
			u.discardStoredFile(ctx, *refImage)
		}
		return CreatedRequest{}, err
	}
	log.Printf("[request][usecase] created request_id=%s service=%q providers=%d", request.ID, svc.Name, len(providerIDs))

	u.notifyProviders(ctx, request, svc, providerIDs)

	return CreatedRequest{Request: request, Quotations: quotations}, nil
}

func (u *RequestLifecycleUseCase) attachReferenceImage(ctx context.Context, requestID string, img UploadInput) (entities.StoredFile, error) {
	path, err := u.fileStore.Upload(ctx, "reference_images", img.Filename, img.ContentType, img.Body, img.Size)
	if err != nil {
		return entities.StoredFile{}, err
	}
	now := u.now().UTC()
	return u.files.Create(ctx, entities.StoredFile{
		ID:           uuid.NewString(),
		Path:         path,
		OriginalName: img.Filename,
		MimeType:     img.ContentType,
		Size:         img.Size,
		OwnerType:    entities.FileOwnerServiceRequest,
		OwnerID:      requestID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// discardStoredFile removes a file record and its object after the write it
// belonged to failed. Cleanup is best-effort; leftovers are only logged.
func (u *RequestLifecycleUseCase) discardStoredFile(ctx context.Context, f entities.StoredFile) {
	if err := u.files.Delete(ctx, f.ID); err != nil {
		log.Printf("[request][usecase] orphan file record delete failed file_id=%s err=%v", f.ID, err)
	}
	if err := u.fileStore.Delete(ctx, f.Path); err != nil {
		log.Printf("[request][usecase] orphan object delete failed path=%s err=%v", f.Path, err)
	}
}

// notifyProviders emails every fanned-out provider. Each attempt runs in
// its own error boundary so one failing recipient never aborts the rest.
func (u *RequestLifecycleUseCase) notifyProviders(ctx context.Context, r entities.ServiceRequest, svc entities.Service, providerIDs []string) {
	for _, providerID := range providerIDs {
		provider, err := u.users.GetByID(ctx, providerID)
		if err != nil || provider.ID == "" {
			log.Printf("[request][usecase] provider lookup failed request_id=%s provider_id=%s err=%v", r.ID, providerID, err)
			continue
		}
		subject := "New service request: " + svc.Name
		body := newRequestMailBody(provider.Name, svc.Name, r)
		if err := u.mailer.Send(ctx, provider.Email, subject, body); err != nil {
			log.Printf("[request][usecase] mail delivery failed request_id=%s provider_id=%s err=%v", r.ID, providerID, err)
		}
	}
}

// SubmitQuotation records a provider's price and observations, moves the
// quotation to quoted and leaves an in-app notice for the client with a
// snapshot of the offer.
func (u *RequestLifecycleUseCase) SubmitQuotation(ctx context.Context, providerID, quotationID string, price float64, observations string) (entities.Quotation, error) {
	providerID = strings.TrimSpace(providerID)
	quotationID = strings.TrimSpace(quotationID)
	if providerID == "" || quotationID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if price < 0 {
		return entities.Quotation{}, ErrInvalidPrice
	}

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if q.ProviderID != providerID {
		return entities.Quotation{}, ErrNotQuotationOwner
	}
	if !q.Quotable() {
		return entities.Quotation{}, ErrQuotationNotQuotable
	}

	request, err := u.requests.GetByID(ctx, q.ServiceRequestID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if request.ID == "" {
		return entities.Quotation{}, ErrRequestNotFound
	}
	if !request.Open() {
		return entities.Quotation{}, ErrRequestClosed
	}

	updated, err := u.quotations.SubmitPrice(ctx, quotationID, price, strings.TrimSpace(observations))
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Quotation{}, ErrQuotationNotQuotable
		}
		return entities.Quotation{}, err
	}

	if request.Status == entities.RequestStatusPending {
		if _, err := u.requests.UpdateStatus(ctx, request.ID, entities.RequestStatusQuoted); err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				return entities.Quotation{}, ErrRequestNotFound
			}
			return entities.Quotation{}, err
		}
	}

	u.noticeClientQuoted(ctx, updated, request, price)

	return updated, nil
}

// noticeClientQuoted stores the client-facing notification for a new
// quotation. The payload is a snapshot, and failure here is swallowed: the
// quotation itself already committed.
func (u *RequestLifecycleUseCase) noticeClientQuoted(ctx context.Context, q entities.Quotation, r entities.ServiceRequest, price float64) {
	svc, err := u.services.GetByID(ctx, r.ServiceID)
	if err != nil {
		log.Printf("[quotation][usecase] notice service lookup failed quotation_id=%s err=%v", q.ID, err)
		return
	}
	provider, err := u.users.GetByID(ctx, q.ProviderID)
	if err != nil {
		log.Printf("[quotation][usecase] notice provider lookup failed quotation_id=%s err=%v", q.ID, err)
		return
	}

	notice := entities.NewQuotationNotice(q, r, svc.Name, provider.Name, price)
	now := u.now().UTC()
	_, err = u.notifications.Create(ctx, entities.Notification{
		ID:             uuid.NewString(),
		UserID:         r.ClientID,
		Title:          "New quotation received",
		Message:        notice.Message(),
		AdditionalData: &notice,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		log.Printf("[quotation][usecase] notice create failed quotation_id=%s err=%v", q.ID, err)
	}
}

// AcceptQuotation hires one provider: the target quotation becomes
// accepted, every sibling is rejected and the parent request becomes hired,
// all inside one transaction. The parent request must still be open. A
// raced second accept fails the transaction's status = quoted conditions
// and surfaces as an invalid-state error with no partial effect.
func (u *RequestLifecycleUseCase) AcceptQuotation(ctx context.Context, clientID, quotationID string) (entities.Quotation, error) {
	q, request, err := u.loadOwnedQuotation(ctx, clientID, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !request.Open() {
		return entities.Quotation{}, ErrRequestClosed
	}
	if q.Status != entities.QuotationStatusQuoted {
		return entities.Quotation{}, ErrQuotationNotAcceptable
	}

	siblings, err := u.quotations.ListByRequestID(ctx, request.ID)
	if err != nil {
		return entities.Quotation{}, err
	}
	siblingIDs := make([]string, 0, len(siblings))
	for _, s := range siblings {
		if s.ID != q.ID {
			siblingIDs = append(siblingIDs, s.ID)
		}
	}

	if err := u.quotations.Accept(ctx, request.ID, q.ID, siblingIDs); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Quotation{}, ErrQuotationNotAcceptable
		}
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] accepted quotation_id=%s request_id=%s rejected_siblings=%d", q.ID, request.ID, len(siblingIDs))

	accepted, err := u.quotations.GetByID(ctx, q.ID)
	if err != nil {
		return entities.Quotation{}, err
	}
	return accepted, nil
}

// RejectQuotation lets the client discard a single pending or quoted offer.
func (u *RequestLifecycleUseCase) RejectQuotation(ctx context.Context, clientID, quotationID string) (entities.Quotation, error) {
	q, _, err := u.loadOwnedQuotation(ctx, clientID, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusPending && q.Status != entities.QuotationStatusQuoted {
		return entities.Quotation{}, ErrQuotationNotRejectable
	}

	updated, err := u.quotations.UpdateStatus(ctx, q.ID, entities.QuotationStatusRejected)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Quotation{}, ErrQuotationNotRejectable
		}
		return entities.Quotation{}, err
	}
	return updated, nil
}

// CancelRequest cancels from pending or quoted unconditionally, and from
// hired only while the appointment is still in the future.
func (u *RequestLifecycleUseCase) CancelRequest(ctx context.Context, clientID, requestID string) (entities.ServiceRequest, error) {
	clientID = strings.TrimSpace(clientID)
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	request, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if request.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	if request.ClientID != clientID {
		return entities.ServiceRequest{}, ErrNotRequestOwner
	}
	if err := request.Cancellable(u.now()); err != nil {
		return entities.ServiceRequest{}, err
	}

	updated, err := u.requests.UpdateStatus(ctx, request.ID, entities.RequestStatusCancelled)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.ServiceRequest{}, ErrRequestNotFound
		}
		return entities.ServiceRequest{}, err
	}
	return updated, nil
}

// RateQuotation stores the one-time 1..5 rating on an accepted quotation.
func (u *RequestLifecycleUseCase) RateQuotation(ctx context.Context, clientID, quotationID string, rating int, comment string) (entities.Quotation, error) {
	q, _, err := u.loadOwnedQuotation(ctx, clientID, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Status != entities.QuotationStatusAccepted {
		return entities.Quotation{}, ErrQuotationNotRatable
	}
	if q.Rating != nil {
		return entities.Quotation{}, ErrQuotationAlreadyRated
	}
	if rating < 1 || rating > 5 {
		return entities.Quotation{}, entities.ErrInvalidRating
	}

	rated, err := u.quotations.Rate(ctx, q.ID, rating, strings.TrimSpace(comment))
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Quotation{}, ErrQuotationAlreadyRated
		}
		return entities.Quotation{}, err
	}
	return rated, nil
}

// ListClientRequests pages through the caller's own requests. Status and
// validity narrow the query; category and free-text search are applied
// against the resolved service.
func (u *RequestLifecycleUseCase) ListClientRequests(ctx context.Context, clientID string, f RequestListFilter) ([]RequestListItem, string, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, "", ErrNotRequestOwner
	}

	requests, cursor, err := u.requests.ListByClientID(ctx, clientID, interfaces.ListFilter{
		Status:   f.Status,
		Validity: f.Validity,
		Limit:    f.Limit,
		Cursor:   f.Cursor,
	})
	if err != nil {
		return nil, "", err
	}

	items := make([]RequestListItem, 0, len(requests))
	for _, r := range requests {
		svc, err := u.services.GetByID(ctx, r.ServiceID)
		if err != nil {
			return nil, "", err
		}
		if !matchesService(svc, f.CategoryID, f.Search) {
			continue
		}
		qs, err := u.quotations.ListByRequestID(ctx, r.ID)
		if err != nil {
			return nil, "", err
		}
		items = append(items, RequestListItem{Request: r, Service: svc, QuotationCount: len(qs)})
	}
	return items, cursor, nil
}

// ListProviderQuotations pages through the quotations assigned to the
// calling provider, each enriched with its request and service.
func (u *RequestLifecycleUseCase) ListProviderQuotations(ctx context.Context, providerID string, f RequestListFilter) ([]ProviderQuotationItem, string, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, "", ErrNotQuotationOwner
	}

	qs, cursor, err := u.quotations.ListByProviderID(ctx, providerID, interfaces.ListFilter{
		Status: f.Status,
		Limit:  f.Limit,
		Cursor: f.Cursor,
	})
	if err != nil {
		return nil, "", err
	}

	items := make([]ProviderQuotationItem, 0, len(qs))
	for _, q := range qs {
		request, err := u.requests.GetByID(ctx, q.ServiceRequestID)
		if err != nil {
			return nil, "", err
		}
		if f.Validity != "" && string(request.Validity) != f.Validity {
			continue
		}
		svc, err := u.services.GetByID(ctx, request.ServiceID)
		if err != nil {
			return nil, "", err
		}
		if !matchesService(svc, f.CategoryID, f.Search) {
			continue
		}
		items = append(items, ProviderQuotationItem{Quotation: q, Request: request, Service: svc})
	}
	return items, cursor, nil
}

// ListRequestQuotations returns every quotation of one of the caller's
// requests, paired with its provider.
func (u *RequestLifecycleUseCase) ListRequestQuotations(ctx context.Context, clientID, requestID string) ([]QuotationListItem, error) {
	clientID = strings.TrimSpace(clientID)
	requestID = strings.TrimSpace(requestID)

	request, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.ID == "" {
		return nil, ErrRequestNotFound
	}
	if request.ClientID != clientID {
		return nil, ErrNotRequestOwner
	}

	qs, err := u.quotations.ListByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	items := make([]QuotationListItem, 0, len(qs))
	for _, q := range qs {
		provider, err := u.users.GetByID(ctx, q.ProviderID)
		if err != nil {
			return nil, err
		}
		items = append(items, QuotationListItem{Quotation: q, Provider: provider})
	}
	return items, nil
}

// loadOwnedQuotation resolves a quotation and its parent request and checks
// the caller owns that request.
func (u *RequestLifecycleUseCase) loadOwnedQuotation(ctx context.Context, clientID, quotationID string) (entities.Quotation, entities.ServiceRequest, error) {
	clientID = strings.TrimSpace(clientID)
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Quotation{}, entities.ServiceRequest{}, ErrQuotationNotFound
	}

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, entities.ServiceRequest{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, entities.ServiceRequest{}, ErrQuotationNotFound
	}

	request, err := u.requests.GetByID(ctx, q.ServiceRequestID)
	if err != nil {
		return entities.Quotation{}, entities.ServiceRequest{}, err
	}
	if request.ID == "" {
		return entities.Quotation{}, entities.ServiceRequest{}, ErrRequestNotFound
	}
	if request.ClientID != clientID {
		return entities.Quotation{}, entities.ServiceRequest{}, ErrNotRequestOwner
	}
	return q, request, nil
}

func distinctOwners(services []entities.Service) []string {
	seen := make(map[string]struct{}, len(services))
	owners := make([]string, 0, len(services))
	for _, s := range services {
		if _, ok := seen[s.OwnerID]; ok {
			continue
		}
		seen[s.OwnerID] = struct{}{}
		owners = append(owners, s.OwnerID)
	}
	return owners
}

func matchesService(svc entities.Service, categoryID, search string) bool {
	if categoryID != "" && svc.CategoryID != categoryID {
		return false
	}
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(svc.Name), search) ||
		strings.Contains(strings.ToLower(svc.Description), search)
}

func newRequestMailBody(providerName, serviceName string, r entities.ServiceRequest) string {
	var b strings.Builder
	b.WriteString("Hello " + providerName + ",\n\n")
	b.WriteString("You have a new service request for " + serviceName + ".\n")
	b.WriteString("Date: " + r.Date + " " + r.Time + "\n")
	b.WriteString("Location: " + r.Location + "\n")
	if r.Observations != "" {
		b.WriteString("Observations: " + r.Observations + "\n")
	}
	b.WriteString("\nSign in to send your quotation.\n")
	return b.String()
}
