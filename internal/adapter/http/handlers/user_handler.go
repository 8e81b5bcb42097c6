package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "servineta/internal/adapter/http/dto/request"
	response "servineta/internal/adapter/http/dto/response"
	"servineta/internal/domain/entities"
	"servineta/internal/usecase"
	"servineta/internal/usecase/interfaces"
	"servineta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)

// UserHandler handles the admin-only account management surface.

type UserHandler struct {
	usecase usecase.IUserAdminUseCase
}

func NewUserHandler(uc usecase.IUserAdminUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) List(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 32)
	items, cursor, err := h.usecase.List(c.Request.Context(), interfaces.ListFilter{
		Search: c.Query("search"),
		Limit:  int32(limit),
		Cursor: c.Query("cursor"),
	})
	if err != nil {
		appErr := mapUserAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(items, cursor))
}

func (h *UserHandler) Create(c *gin.Context) {
	var payload request.AdminUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.AdminUserInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Role:     entities.Role(payload.Role),
		Password: payload.Password,
		Active:   payload.Active,
	})
	if err != nil {
		appErr := mapUserAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedUser(created))
}

func (h *UserHandler) Update(c *gin.Context) {
	var payload request.AdminUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("user_id"), usecase.AdminUserInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Role:     entities.Role(payload.Role),
		Password: payload.Password,
		Active:   payload.Active,
	})
	if err != nil {
		appErr := mapUserAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(updated))
}

func (h *UserHandler) Toggle(c *gin.Context) {
	updated, err := h.usecase.Toggle(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapUserAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(updated))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("user_id")); err != nil {
		appErr := mapUserAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapUserAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserInput):
		return pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserEmailAlreadyExists):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Another user already has this email", http.StatusConflict)
	case errors.Is(err, usecase.ErrSuperAdminUndeletable):
		return pkg.NewDomainErrorSimple("SUPERADMIN_UNDELETABLE", "Superadmin accounts cannot be deleted", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
