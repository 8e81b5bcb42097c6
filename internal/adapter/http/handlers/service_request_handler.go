package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	request "servineta/internal/adapter/http/dto/request"
	response "servineta/internal/adapter/http/dto/response"
	"servineta/internal/adapter/http/middleware"
	"servineta/internal/domain/entities"
	"servineta/internal/usecase"
	"servineta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid service request payload", http.StatusBadRequest)

// ServiceRequestHandler handles the client side of the request lifecycle:
// creation with fan-out, listing, cancellation and the per-request
// quotation view.

type ServiceRequestHandler struct {
	usecase usecase.IRequestLifecycleUseCase
}

func NewServiceRequestHandler(uc usecase.IRequestLifecycleUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// Create accepts JSON or multipart form submissions; multipart ones may
// carry a reference_image file part.
func (h *ServiceRequestHandler) Create(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	in := usecase.CreateRequestInput{
		ServiceID:    payload.ServiceID,
		Date:         payload.Date,
		Time:         payload.Time,
		Location:     payload.Location,
		Observations: payload.Observations,
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if fh, err := c.FormFile("reference_image"); err == nil {
			upload, file, err := openUpload(fh)
			if err != nil {
				c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
				return
			}
			defer file.Close()
			in.ReferenceImage = upload
		}
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), c.GetString(middleware.ContextUserID), in)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedRequest(created))
}

func (h *ServiceRequestHandler) ListMine(c *gin.Context) {
	items, cursor, err := h.usecase.ListClientRequests(c.Request.Context(), c.GetString(middleware.ContextUserID), listFilterFromQuery(c))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestListItems(items, cursor))
}

func (h *ServiceRequestHandler) Cancel(c *gin.Context) {
	updated, err := h.usecase.CancelRequest(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("request_id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

func (h *ServiceRequestHandler) ListQuotations(c *gin.Context) {
	items, err := h.usecase.ListRequestQuotations(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("request_id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotationListItems(items))
}

func openUpload(fh *multipart.FileHeader) (*usecase.UploadInput, multipart.File, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &usecase.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        file,
	}, file, nil
}

func listFilterFromQuery(c *gin.Context) usecase.RequestListFilter {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 32)
	return usecase.RequestListFilter{
		Status:     c.Query("status"),
		Validity:   c.Query("validity"),
		CategoryID: c.Query("category_id"),
		Search:     c.Query("search"),
		Limit:      int32(limit),
		Cursor:     c.Query("cursor"),
	}
}

func mapLifecycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestInput), errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotRequestOwner), errors.Is(err, usecase.ErrNotQuotationOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not own this resource", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestClosed):
		return pkg.NewDomainErrorSimple("REQUEST_CLOSED", "Service request is no longer open", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoProvidersAvailable):
		return pkg.NewDomainErrorSimple("NO_PROVIDERS_AVAILABLE", "No active providers offer this service", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuotationNotQuotable):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_QUOTABLE", "Only pending or quoted quotations can be quoted", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuotationNotAcceptable):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_ACCEPTABLE", "Only quoted quotations can be accepted", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuotationNotRejectable):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_REJECTABLE", "Only pending or quoted quotations can be rejected", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuotationNotRatable):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_RATABLE", "Only accepted quotations can be rated", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuotationAlreadyRated):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_RATED", "Quotation is already rated", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidRating):
		return pkg.NewDomainErrorSimple("INVALID_RATING", "Rating must be between 1 and 5", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrPastAppointment):
		return pkg.NewDomainErrorSimple("PAST_APPOINTMENT", "Hired requests can only be cancelled before the appointment", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrRequestNotCancellable):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_CANCELLABLE", "Request can no longer be cancelled", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
