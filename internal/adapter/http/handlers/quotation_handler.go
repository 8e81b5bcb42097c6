package handlers

import (
	"context"
	"net/http"

	request "servineta/internal/adapter/http/dto/request"
	response "servineta/internal/adapter/http/dto/response"
	"servineta/internal/adapter/http/middleware"
	"servineta/internal/domain/entities"
	"servineta/internal/usecase"
	"servineta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler handles both sides of a quotation: the provider's price
// submission and listing, and the client's accept/reject/rate decisions.

type QuotationHandler struct {
	usecase usecase.IRequestLifecycleUseCase
}

func NewQuotationHandler(uc usecase.IRequestLifecycleUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) Submit(c *gin.Context) {
	var payload request.SubmitQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Price == nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SubmitQuotation(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("quotation_id"), *payload.Price, payload.Observations)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(updated))
}

func (h *QuotationHandler) Accept(c *gin.Context) {
	h.decideQuotation(c, h.usecase.AcceptQuotation)
}

func (h *QuotationHandler) Reject(c *gin.Context) {
	h.decideQuotation(c, h.usecase.RejectQuotation)
}

func (h *QuotationHandler) decideQuotation(
	c *gin.Context,
	decision func(ctx context.Context, clientID, quotationID string) (entities.Quotation, error),
) {
	updated, err := decision(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("quotation_id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(updated))
}

func (h *QuotationHandler) Rate(c *gin.Context) {
	var payload request.RateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Rating == nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	rated, err := h.usecase.RateQuotation(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("quotation_id"), *payload.Rating, payload.Comment)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(rated))
}

// ListMine lists the quotations assigned to the calling provider.
func (h *QuotationHandler) ListMine(c *gin.Context) {
	items, cursor, err := h.usecase.ListProviderQuotations(c.Request.Context(), c.GetString(middleware.ContextUserID), listFilterFromQuery(c))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProviderQuotationItems(items, cursor))
}
