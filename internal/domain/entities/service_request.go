package entities

import (
	"fmt"
	"time"
)

// RequestStatus is the lifecycle state of a service request.
//
// Transitions:
//
//	pending --(provider quotes)--> quoted
//	pending --(client cancels)--> cancelled
//	quoted  --(client accepts a quotation)--> hired
//	quoted  --(client rejects)--> rejected
//	hired   --(client cancels, future appointment only)--> cancelled
//
// rejected and cancelled are terminal. hired is terminal except for the
// one-time rating stored on the accepted quotation.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusQuoted    RequestStatus = "quoted"
	RequestStatusHired     RequestStatus = "hired"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestStatusPending, RequestStatusQuoted, RequestStatusHired,
		RequestStatusRejected, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

// Validity marks whether the request's appointment window is still open.
type Validity string

const (
	ValidityCurrent  Validity = "current"
	ValidityFinished Validity = "finished"
)

// ServiceRequest is a client's ask for a service on a date/time/location.
// It owns its quotations: one per eligible provider, created together with
// the request in a single transaction.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
type ServiceRequest struct {
	ID               string        `json:"id"`
	ClientID         string        `json:"client_id"`
	ServiceID        string        `json:"service_id"`
	Date             string        `json:"date"` // YYYY-MM-DD
	Time             string        `json:"time"` // HH:MM
	Location         string        `json:"location"`
	Observations     string        `json:"observations,omitempty"`
	ReferenceImageID string        `json:"reference_image_id,omitempty"`
	Status           RequestStatus `json:"status"`
	Validity         Validity      `json:"validity_status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Open reports whether the request still takes quotation activity. Once a
// request is hired, rejected or cancelled, its quotations are frozen.
func (r ServiceRequest) Open() bool {
	return r.Status == RequestStatusPending || r.Status == RequestStatusQuoted
}

// AppointmentAt resolves the appointment instant from the stored date and
// time fields, interpreted in the server's local zone.
func (r ServiceRequest) AppointmentAt() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", fmt.Sprintf("%s %s", r.Date, r.Time), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment datetime %q %q: %w", r.Date, r.Time, err)
	}
	return t, nil
}

// Cancellable reports whether the request may still be cancelled by its
// client. A hired request can only be cancelled before the appointment.
func (r ServiceRequest) Cancellable(now time.Time) error {
	switch r.Status {
	case RequestStatusPending, RequestStatusQuoted:
		return nil
	case RequestStatusHired:
		at, err := r.AppointmentAt()
		if err != nil {
			return err
		}
		if !at.After(now) {
			return ErrPastAppointment
		}
		return nil
	default:
		return ErrRequestNotCancellable
	}
}
