package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "servineta/internal/adapter/http/dto/request"
	response "servineta/internal/adapter/http/dto/response"
	"servineta/internal/usecase"
	"servineta/internal/usecase/interfaces"
	"servineta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCategoryPayload = pkg.NewDomainErrorSimple("INVALID_CATEGORY_INPUT", "Invalid category payload", http.StatusBadRequest)

// CategoryHandler handles the admin-managed category set plus the public
// active listing.

type CategoryHandler struct {
	usecase usecase.ICategoryUseCase
}

func NewCategoryHandler(uc usecase.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{usecase: uc}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var payload request.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCategoryPayload.HTTPStatus, errInvalidCategoryPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CategoryInput{
		Name:        payload.Name,
		Description: payload.Description,
		Active:      payload.Active,
	})
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCategory(created))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var payload request.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCategoryPayload.HTTPStatus, errInvalidCategoryPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("category_id"), usecase.CategoryInput{
		Name:        payload.Name,
		Description: payload.Description,
		Active:      payload.Active,
	})
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategory(updated))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("category_id")); err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) Toggle(c *gin.Context) {
	updated, err := h.usecase.Toggle(c.Request.Context(), c.Param("category_id"))
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategory(updated))
}

func (h *CategoryHandler) List(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 32)
	items, cursor, err := h.usecase.List(c.Request.Context(), interfaces.ListFilter{
		Search: c.Query("search"),
		Limit:  int32(limit),
		Cursor: c.Query("cursor"),
	})
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(items, cursor))
}

func (h *CategoryHandler) ListActive(c *gin.Context) {
	items, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(items, ""))
}

func mapCategoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCategoryInput):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY_INPUT", "Invalid category payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
