package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase/interfaces"
	mock_interfaces "servineta/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type lifecycleMocks struct {
	requests      *mock_interfaces.MockIServiceRequestRepository
	quotations    *mock_interfaces.MockIQuotationRepository
	services      *mock_interfaces.MockIServiceRepository
	users         *mock_interfaces.MockIUserRepository
	notifications *mock_interfaces.MockINotificationRepository
	files         *mock_interfaces.MockIFileRepository
	fileStore     *mock_interfaces.MockIFileStore
	mailer        *mock_interfaces.MockIMailer
}

func newLifecycleUseCase(ctrl *gomock.Controller) (*RequestLifecycleUseCase, lifecycleMocks) {
	m := lifecycleMocks{
		requests:      mock_interfaces.NewMockIServiceRequestRepository(ctrl),
		quotations:    mock_interfaces.NewMockIQuotationRepository(ctrl),
		services:      mock_interfaces.NewMockIServiceRepository(ctrl),
		users:         mock_interfaces.NewMockIUserRepository(ctrl),
		notifications: mock_interfaces.NewMockINotificationRepository(ctrl),
		files:         mock_interfaces.NewMockIFileRepository(ctrl),
		fileStore:     mock_interfaces.NewMockIFileStore(ctrl),
		mailer:        mock_interfaces.NewMockIMailer(ctrl),
	}
	uc := NewRequestLifecycleUseCase(m.requests, m.quotations, m.services, m.users, m.notifications, m.files, m.fileStore, m.mailer)
	return uc, m
}

func TestRequestLifecycleUseCase_CreateRequest(t *testing.T) {
	validInput := CreateRequestInput{
		ServiceID: "svc-1",
		Date:      "2026-10-20",
		Time:      "14:30",
		Location:  "Av. Paulista 1000",
	}

	t.Run("missing location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newLifecycleUseCase(ctrl)

		in := validInput
		in.Location = "   "
		_, err := uc.CreateRequest(context.Background(), "client-1", in)
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newLifecycleUseCase(ctrl)

		in := validInput
		in.Date = "20/10/2026"
		_, err := uc.CreateRequest(context.Background(), "client-1", in)
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("service not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, nil)

		_, err := uc.CreateRequest(context.Background(), "client-1", validInput)
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("no providers persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Name: "Haircut"}, nil)
		m.services.EXPECT().ListActiveByName(gomock.Any(), "Haircut").Return(nil, nil)

		_, err := uc.CreateRequest(context.Background(), "client-1", validInput)
		if !errors.Is(err, ErrNoProvidersAvailable) {
			t.Fatalf("expected ErrNoProvidersAvailable, got %v", err)
		}
	})

	t.Run("fans out one quotation per distinct provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Name: "Haircut", OwnerID: "prov-1"}, nil)
		m.services.EXPECT().ListActiveByName(gomock.Any(), "Haircut").Return([]entities.Service{
			{ID: "svc-1", Name: "Haircut", OwnerID: "prov-1"},
			{ID: "svc-9", Name: "Haircut", OwnerID: "prov-2"},
			{ID: "svc-7", Name: "Haircut", OwnerID: "prov-1"},
		}, nil)
		m.requests.EXPECT().CreateWithQuotations(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest, qs []entities.Quotation) error {
				if r.ID == "" || r.ClientID != "client-1" || r.ServiceID != "svc-1" {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.Status != entities.RequestStatusPending || r.Validity != entities.ValidityCurrent {
					t.Fatalf("unexpected initial state: %s/%s", r.Status, r.Validity)
				}
				if len(qs) != 2 {
					t.Fatalf("expected 2 quotations, got %d", len(qs))
				}
				for _, q := range qs {
					if q.ServiceRequestID != r.ID || q.Status != entities.QuotationStatusPending {
						t.Fatalf("unexpected quotation: %+v", q)
					}
				}
				if qs[0].ProviderID != "prov-1" || qs[1].ProviderID != "prov-2" {
					t.Fatalf("unexpected providers: %s %s", qs[0].ProviderID, qs[1].ProviderID)
				}
				return nil
			},
		)
		m.users.EXPECT().GetByID(gomock.Any(), "prov-1").Return(entities.User{ID: "prov-1", Name: "Ana", Email: "ana@mail.com"}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "prov-2").Return(entities.User{ID: "prov-2", Name: "Bia", Email: "bia@mail.com"}, nil)
		m.mailer.EXPECT().Send(gomock.Any(), "ana@mail.com", gomock.Any(), gomock.Any()).Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), "bia@mail.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		res, err := uc.CreateRequest(context.Background(), "client-1", validInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Quotations) != 2 {
			t.Fatalf("expected 2 quotations, got %d", len(res.Quotations))
		}
	})

	t.Run("transaction error bubbles up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Name: "Haircut"}, nil)
		m.services.EXPECT().ListActiveByName(gomock.Any(), "Haircut").Return([]entities.Service{{ID: "svc-1", Name: "Haircut", OwnerID: "prov-1"}}, nil)
		m.requests.EXPECT().CreateWithQuotations(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.CreateRequest(context.Background(), "client-1", validInput)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("failed transaction discards the reference image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		in := validInput
		in.ReferenceImage = &UploadInput{Filename: "ref.jpg", ContentType: "image/jpeg", Size: 10}

		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Name: "Haircut"}, nil)
		m.services.EXPECT().ListActiveByName(gomock.Any(), "Haircut").Return([]entities.Service{{ID: "svc-1", Name: "Haircut", OwnerID: "prov-1"}}, nil)
		m.fileStore.EXPECT().Upload(gomock.Any(), "reference_images", "ref.jpg", "image/jpeg", gomock.Any(), int64(10)).Return("reference_images/abc.jpg", nil)
		m.files.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.StoredFile{})).DoAndReturn(
			func(_ context.Context, f entities.StoredFile) (entities.StoredFile, error) {
				return f, nil
			},
		)
		m.requests.EXPECT().CreateWithQuotations(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db"))
		m.files.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		m.fileStore.EXPECT().Delete(gomock.Any(), "reference_images/abc.jpg").Return(nil)

		_, err := uc.CreateRequest(context.Background(), "client-1", in)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestRequestLifecycleUseCase_SubmitQuotation(t *testing.T) {
	pending := entities.Quotation{ID: "q-1", ServiceRequestID: "req-1", ProviderID: "prov-1", Status: entities.QuotationStatusPending}

	t.Run("negative price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newLifecycleUseCase(ctrl)

		_, err := uc.SubmitQuotation(context.Background(), "prov-1", "q-1", -10, "")
		if !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("not the assigned provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(pending, nil)

		_, err := uc.SubmitQuotation(context.Background(), "prov-2", "q-1", 100, "")
		if !errors.Is(err, ErrNotQuotationOwner) {
			t.Fatalf("expected ErrNotQuotationOwner, got %v", err)
		}
	})

	t.Run("accepted quotation is frozen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		frozen := pending
		frozen.Status = entities.QuotationStatusAccepted
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(frozen, nil)

		_, err := uc.SubmitQuotation(context.Background(), "prov-1", "q-1", 100, "")
		if !errors.Is(err, ErrQuotationNotQuotable) {
			t.Fatalf("expected ErrQuotationNotQuotable, got %v", err)
		}
	})

	t.Run("raced state change maps condition failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", ClientID: "client-1", Status: entities.RequestStatusQuoted}, nil)
		m.quotations.EXPECT().SubmitPrice(gomock.Any(), "q-1", 100.0, "").Return(entities.Quotation{}, interfaces.ErrConditionFailed)

		_, err := uc.SubmitQuotation(context.Background(), "prov-1", "q-1", 100, "")
		if !errors.Is(err, ErrQuotationNotQuotable) {
			t.Fatalf("expected ErrQuotationNotQuotable, got %v", err)
		}
	})

	t.Run("cancelled request refuses new offers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		cancelled := entities.ServiceRequest{ID: "req-1", ClientID: "client-1", Status: entities.RequestStatusCancelled}
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(cancelled, nil)

		_, err := uc.SubmitQuotation(context.Background(), "prov-1", "q-1", 100, "")
		if !errors.Is(err, ErrRequestClosed) {
			t.Fatalf("expected ErrRequestClosed, got %v", err)
		}
	})

	t.Run("success moves pending request to quoted and notifies client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		price := 150.0
		quoted := pending
		quoted.Status = entities.QuotationStatusQuoted
		quoted.Price = &price
		request := entities.ServiceRequest{ID: "req-1", ClientID: "client-1", ServiceID: "svc-1", Date: "2026-10-20", Time: "14:30", Status: entities.RequestStatusPending}

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(pending, nil)
		m.quotations.EXPECT().SubmitPrice(gomock.Any(), "q-1", 150.0, "brings own tools").Return(quoted, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusQuoted).Return(request, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Name: "Haircut"}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "prov-1").Return(entities.User{ID: "prov-1", Name: "Ana"}, nil)
		m.notifications.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Notification{})).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.UserID != "client-1" {
					t.Fatalf("expected notice for client-1, got %s", n.UserID)
				}
				if n.AdditionalData == nil || n.AdditionalData.Price != 150.0 || n.AdditionalData.QuotationID != "q-1" {
					t.Fatalf("unexpected notice payload: %+v", n.AdditionalData)
				}
				return n, nil
			},
		)

		res, err := uc.SubmitQuotation(context.Background(), "prov-1", "q-1", 150, " brings own tools ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuotationStatusQuoted {
			t.Fatalf("expected quoted, got %s", res.Status)
		}
	})

	t.Run("notice failure never fails the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		quoted := pending
		quoted.Status = entities.QuotationStatusQuoted
		request := entities.ServiceRequest{ID: "req-1", ClientID: "client-1", ServiceID: "svc-1", Status: entities.RequestStatusQuoted}

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(pending, nil)
		m.quotations.EXPECT().SubmitPrice(gomock.Any(), "q-1", 90.0, "").Return(quoted, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, errors.New("db"))

		_, err := uc.SubmitQuotation(context.Background(), "prov-1", "q-1", 90, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRequestLifecycleUseCase_AcceptQuotation(t *testing.T) {
	quoted := entities.Quotation{ID: "q-1", ServiceRequestID: "req-1", ProviderID: "prov-1", Status: entities.QuotationStatusQuoted}
	request := entities.ServiceRequest{ID: "req-1", ClientID: "client-1", Status: entities.RequestStatusQuoted}

	t.Run("not the request owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoted, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)

		_, err := uc.AcceptQuotation(context.Background(), "client-2", "q-1")
		if !errors.Is(err, ErrNotRequestOwner) {
			t.Fatalf("expected ErrNotRequestOwner, got %v", err)
		}
	})

	t.Run("pending quotation has no price yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		pending := quoted
		pending.Status = entities.QuotationStatusPending
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)

		_, err := uc.AcceptQuotation(context.Background(), "client-1", "q-1")
		if !errors.Is(err, ErrQuotationNotAcceptable) {
			t.Fatalf("expected ErrQuotationNotAcceptable, got %v", err)
		}
	})

	t.Run("cancelled request stays terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		cancelled := request
		cancelled.Status = entities.RequestStatusCancelled
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoted, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(cancelled, nil)

		_, err := uc.AcceptQuotation(context.Background(), "client-1", "q-1")
		if !errors.Is(err, ErrRequestClosed) {
			t.Fatalf("expected ErrRequestClosed, got %v", err)
		}
	})

	t.Run("rejects every sibling in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoted, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)
		m.quotations.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Quotation{
			quoted,
			{ID: "q-2", ServiceRequestID: "req-1", Status: entities.QuotationStatusPending},
			{ID: "q-3", ServiceRequestID: "req-1", Status: entities.QuotationStatusQuoted},
		}, nil)
		m.quotations.EXPECT().Accept(gomock.Any(), "req-1", "q-1", []string{"q-2", "q-3"}).Return(nil)
		accepted := quoted
		accepted.Status = entities.QuotationStatusAccepted
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(accepted, nil)

		res, err := uc.AcceptQuotation(context.Background(), "client-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuotationStatusAccepted {
			t.Fatalf("expected accepted, got %s", res.Status)
		}
	})

	t.Run("raced double accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(quoted, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)
		m.quotations.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Quotation{quoted}, nil)
		m.quotations.EXPECT().Accept(gomock.Any(), "req-1", "q-1", []string{}).Return(interfaces.ErrConditionFailed)

		_, err := uc.AcceptQuotation(context.Background(), "client-1", "q-1")
		if !errors.Is(err, ErrQuotationNotAcceptable) {
			t.Fatalf("expected ErrQuotationNotAcceptable, got %v", err)
		}
	})
}

func TestRequestLifecycleUseCase_RejectQuotation(t *testing.T) {
	request := entities.ServiceRequest{ID: "req-1", ClientID: "client-1"}

	t.Run("accepted cannot be rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		q := entities.Quotation{ID: "q-1", ServiceRequestID: "req-1", Status: entities.QuotationStatusAccepted}
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)

		_, err := uc.RejectQuotation(context.Background(), "client-1", "q-1")
		if !errors.Is(err, ErrQuotationNotRejectable) {
			t.Fatalf("expected ErrQuotationNotRejectable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		q := entities.Quotation{ID: "q-1", ServiceRequestID: "req-1", Status: entities.QuotationStatusQuoted}
		rejected := q
		rejected.Status = entities.QuotationStatusRejected
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)
		m.quotations.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusRejected).Return(rejected, nil)

		res, err := uc.RejectQuotation(context.Background(), "client-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuotationStatusRejected {
			t.Fatalf("expected rejected, got %s", res.Status)
		}
	})
}

func TestRequestLifecycleUseCase_CancelRequest(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, nil)

		_, err := uc.CancelRequest(context.Background(), "client-1", "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", ClientID: "client-1"}, nil)

		_, err := uc.CancelRequest(context.Background(), "client-2", "req-1")
		if !errors.Is(err, ErrNotRequestOwner) {
			t.Fatalf("expected ErrNotRequestOwner, got %v", err)
		}
	})

	t.Run("hired with past appointment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)
		uc.now = func() time.Time { return time.Date(2026, 10, 21, 9, 0, 0, 0, time.UTC) }

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{
			ID: "req-1", ClientID: "client-1", Date: "2026-10-20", Time: "14:30",
			Status: entities.RequestStatusHired,
		}, nil)

		_, err := uc.CancelRequest(context.Background(), "client-1", "req-1")
		if !errors.Is(err, entities.ErrPastAppointment) {
			t.Fatalf("expected ErrPastAppointment, got %v", err)
		}
	})

	t.Run("hired with future appointment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)
		uc.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }

		req := entities.ServiceRequest{
			ID: "req-1", ClientID: "client-1", Date: "2026-10-20", Time: "14:30",
			Status: entities.RequestStatusHired,
		}
		cancelled := req
		cancelled.Status = entities.RequestStatusCancelled
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(req, nil)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusCancelled).Return(cancelled, nil)

		res, err := uc.CancelRequest(context.Background(), "client-1", "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}
	})

	t.Run("terminal status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{
			ID: "req-1", ClientID: "client-1", Status: entities.RequestStatusRejected,
		}, nil)

		_, err := uc.CancelRequest(context.Background(), "client-1", "req-1")
		if !errors.Is(err, entities.ErrRequestNotCancellable) {
			t.Fatalf("expected ErrRequestNotCancellable, got %v", err)
		}
	})

	t.Run("concurrently deleted request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{
			ID: "req-1", ClientID: "client-1", Status: entities.RequestStatusPending,
		}, nil)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusCancelled).Return(entities.ServiceRequest{}, interfaces.ErrConditionFailed)

		_, err := uc.CancelRequest(context.Background(), "client-1", "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})
}

func TestRequestLifecycleUseCase_RateQuotation(t *testing.T) {
	request := entities.ServiceRequest{ID: "req-1", ClientID: "client-1"}
	accepted := entities.Quotation{ID: "q-1", ServiceRequestID: "req-1", Status: entities.QuotationStatusAccepted}

	t.Run("only accepted quotations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		q := accepted
		q.Status = entities.QuotationStatusQuoted
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)

		_, err := uc.RateQuotation(context.Background(), "client-1", "q-1", 5, "")
		if !errors.Is(err, ErrQuotationNotRatable) {
			t.Fatalf("expected ErrQuotationNotRatable, got %v", err)
		}
	})

	t.Run("already rated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		five := 5
		q := accepted
		q.Rating = &five
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)

		_, err := uc.RateQuotation(context.Background(), "client-1", "q-1", 4, "")
		if !errors.Is(err, ErrQuotationAlreadyRated) {
			t.Fatalf("expected ErrQuotationAlreadyRated, got %v", err)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6} {
			ctrl := gomock.NewController(t)
			uc, m := newLifecycleUseCase(ctrl)

			m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(accepted, nil)
			m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)

			_, err := uc.RateQuotation(context.Background(), "client-1", "q-1", rating, "")
			if !errors.Is(err, entities.ErrInvalidRating) {
				t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("success trims the comment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		five := 5
		rated := accepted
		rated.Rating = &five
		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(accepted, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)
		m.quotations.EXPECT().Rate(gomock.Any(), "q-1", 5, "great work").Return(rated, nil)

		res, err := uc.RateQuotation(context.Background(), "client-1", "q-1", 5, "  great work ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Rating == nil || *res.Rating != 5 {
			t.Fatalf("expected rating 5, got %+v", res.Rating)
		}
	})

	t.Run("raced double rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(accepted, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(request, nil)
		m.quotations.EXPECT().Rate(gomock.Any(), "q-1", 3, "").Return(entities.Quotation{}, interfaces.ErrConditionFailed)

		_, err := uc.RateQuotation(context.Background(), "client-1", "q-1", 3, "")
		if !errors.Is(err, ErrQuotationAlreadyRated) {
			t.Fatalf("expected ErrQuotationAlreadyRated, got %v", err)
		}
	})
}

func TestRequestLifecycleUseCase_ListClientRequests(t *testing.T) {
	t.Run("blank caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newLifecycleUseCase(ctrl)

		_, _, err := uc.ListClientRequests(context.Background(), "  ", RequestListFilter{})
		if !errors.Is(err, ErrNotRequestOwner) {
			t.Fatalf("expected ErrNotRequestOwner, got %v", err)
		}
	})

	t.Run("category filter drops unmatched rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.requests.EXPECT().ListByClientID(gomock.Any(), "client-1", interfaces.ListFilter{Status: "pending", Limit: 10}).Return([]entities.ServiceRequest{
			{ID: "req-1", ClientID: "client-1", ServiceID: "svc-1"},
			{ID: "req-2", ClientID: "client-1", ServiceID: "svc-2"},
		}, "next-cursor", nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", CategoryID: "cat-1"}, nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-2").Return(entities.Service{ID: "svc-2", CategoryID: "cat-2"}, nil)
		m.quotations.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Quotation{{ID: "q-1"}, {ID: "q-2"}}, nil)

		items, cursor, err := uc.ListClientRequests(context.Background(), "client-1", RequestListFilter{Status: "pending", CategoryID: "cat-1", Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cursor != "next-cursor" {
			t.Fatalf("expected cursor passthrough, got %q", cursor)
		}
		if len(items) != 1 || items[0].Request.ID != "req-1" || items[0].QuotationCount != 2 {
			t.Fatalf("unexpected items: %+v", items)
		}
	})
}

func TestRequestLifecycleUseCase_ListRequestQuotations(t *testing.T) {
	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", ClientID: "client-1"}, nil)

		_, err := uc.ListRequestQuotations(context.Background(), "client-2", "req-1")
		if !errors.Is(err, ErrNotRequestOwner) {
			t.Fatalf("expected ErrNotRequestOwner, got %v", err)
		}
	})

	t.Run("pairs each quotation with its provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLifecycleUseCase(ctrl)

		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", ClientID: "client-1"}, nil)
		m.quotations.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Quotation{
			{ID: "q-1", ProviderID: "prov-1"},
			{ID: "q-2", ProviderID: "prov-2"},
		}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "prov-1").Return(entities.User{ID: "prov-1", Name: "Ana"}, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "prov-2").Return(entities.User{ID: "prov-2", Name: "Bia"}, nil)

		items, err := uc.ListRequestQuotations(context.Background(), "client-1", "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || items[0].Provider.Name != "Ana" || items[1].Provider.Name != "Bia" {
			t.Fatalf("unexpected items: %+v", items)
		}
	})
}
