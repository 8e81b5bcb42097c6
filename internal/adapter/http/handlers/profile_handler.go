package handlers

import (
	"errors"
	"net/http"

	request "servineta/internal/adapter/http/dto/request"
	response "servineta/internal/adapter/http/dto/response"
	"servineta/internal/adapter/http/middleware"
	"servineta/internal/usecase"
	"servineta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProfilePayload = pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)

// ProfileHandler handles the caller's own account: basic info, password
// change and profile picture.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	user, err := h.usecase.Get(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateProfile(c.Request.Context(), c.GetString(middleware.ContextUserID), usecase.UpdateProfileInput{
		Name:            payload.Name,
		Email:           payload.NormalizedEmail(),
		CurrentPassword: payload.CurrentPassword,
		NewPassword:     payload.NewPassword,
	})
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(updated))
}

// UpdatePicture expects a multipart form with a profile_picture file part.
func (h *ProfileHandler) UpdatePicture(c *gin.Context) {
	fh, err := c.FormFile("profile_picture")
	if err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}
	upload, file, err := openUpload(fh)
	if err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}
	defer file.Close()

	updated, err := h.usecase.UpdatePicture(c.Request.Context(), c.GetString(middleware.ContextUserID), *upload)
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(updated))
}

func (h *ProfileHandler) DeletePicture(c *gin.Context) {
	updated, err := h.usecase.DeletePicture(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(updated))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAuthInput):
		return pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email is already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrWrongPassword):
		return pkg.NewDomainErrorSimple("WRONG_PASSWORD", "Current password is incorrect", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "Password must be at least 8 characters", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoProfilePicture):
		return pkg.NewDomainErrorSimple("NO_PROFILE_PICTURE", "There is no profile picture to delete", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
