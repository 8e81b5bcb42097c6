package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "servineta/internal/adapter/http/dto/request"
	response "servineta/internal/adapter/http/dto/response"
	"servineta/internal/adapter/http/middleware"
	"servineta/internal/domain/entities"
	"servineta/internal/usecase"
	"servineta/internal/usecase/interfaces"
	"servineta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ServiceHandler handles the provider's own services and the public catalog.

type ServiceHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewServiceHandler(uc usecase.ICatalogUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	payload, images, ok := h.bindServicePayload(c)
	if !ok {
		return
	}
	if strings.TrimSpace(payload.Name) == "" || payload.Price == nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateService(c.Request.Context(), c.GetString(middleware.ContextUserID), usecase.ServiceInput{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       *payload.Price,
		CategoryID:  payload.CategoryID,
		Gender:      entities.Gender(payload.Gender),
		Active:      payload.Active,
		Images:      images,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceWithImages(created))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	payload, images, ok := h.bindServicePayload(c)
	if !ok {
		return
	}

	in := usecase.ServiceInput{
		Name:        payload.Name,
		Description: payload.Description,
		CategoryID:  payload.CategoryID,
		Gender:      entities.Gender(payload.Gender),
		Active:      payload.Active,
		Images:      images,
	}
	if payload.Price != nil {
		in.Price = *payload.Price
	}

	updated, err := h.usecase.UpdateService(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("service_id"), in)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceWithImages(updated))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("service_id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) Toggle(c *gin.Context) {
	updated, err := h.usecase.ToggleService(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("service_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(updated))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.usecase.GetService(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("service_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceWithImages(svc))
}

func (h *ServiceHandler) ListMine(c *gin.Context) {
	items, cursor, err := h.usecase.ListOwn(c.Request.Context(), c.GetString(middleware.ContextUserID), serviceFilterFromQuery(c))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServicesWithImages(items, cursor))
}

// Catalog lists active services for any authenticated caller.
func (h *ServiceHandler) Catalog(c *gin.Context) {
	items, cursor, err := h.usecase.Catalog(c.Request.Context(), serviceFilterFromQuery(c))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServicesWithImages(items, cursor))
}

func (h *ServiceHandler) DeleteImage(c *gin.Context) {
	err := h.usecase.DeleteServiceImage(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("service_id"), c.Param("file_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// bindServicePayload reads the body from JSON or multipart form; multipart
// bodies may carry image file parts under "images".
func (h *ServiceHandler) bindServicePayload(c *gin.Context) (request.ServicePayload, []usecase.UploadInput, bool) {
	var payload request.ServicePayload
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return request.ServicePayload{}, nil, false
	}

	var images []usecase.UploadInput
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err == nil {
			for _, fh := range form.File["images"] {
				upload, _, err := openUpload(fh)
				if err != nil {
					c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
					return request.ServicePayload{}, nil, false
				}
				images = append(images, *upload)
			}
		}
	}
	return payload, images, true
}

func serviceFilterFromQuery(c *gin.Context) interfaces.ServiceFilter {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 32)
	return interfaces.ServiceFilter{
		Search:     c.Query("search"),
		CategoryID: c.Query("category_id"),
		Gender:     c.Query("gender"),
		Active:     c.Query("active"),
		Limit:      int32(limit),
		Cursor:     c.Query("cursor"),
	}
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceInput):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceUnavailable):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Service is not available", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotServiceOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You do not own this service", http.StatusForbidden)
	case errors.Is(err, usecase.ErrFileNotFound):
		return pkg.NewDomainErrorSimple("FILE_NOT_FOUND", "File not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFileNotAttached):
		return pkg.NewDomainErrorSimple("FILE_NOT_ATTACHED", "File does not belong to this service", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
