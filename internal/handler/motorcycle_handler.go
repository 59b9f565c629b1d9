package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "yardflow/internal/errors"
	"yardflow/internal/links"
	"yardflow/internal/model"
	"yardflow/internal/service"
)

const motoBasePath = "/api/moto"

// MotorcycleHandler handles motorcycle inventory endpoints.
type MotorcycleHandler struct {
	svc service.MotorcycleService
}

// NewMotorcycleHandler creates a new motorcycle handler.
func NewMotorcycleHandler(svc service.MotorcycleService) *MotorcycleHandler {
	return &MotorcycleHandler{svc: svc}
}

// motoResource is a motorcycle representation with its hypermedia relations.
type motoResource struct {
	model.Motorcycle
	Links []links.Link `json:"links"`
}

func newMotoResource(moto model.Motorcycle) motoResource {
	return motoResource{Motorcycle: moto, Links: links.For(motoBasePath, moto.ID)}
}

// List godoc
// @Summary List motorcycles (paginated)
// @Tags motos
// @Produce json
// @Param pageNumber query int false "Page number (default 1)"
// @Param pageSize query int false "Items per page (default 5)"
// @Success 200 {object} map[string]interface{}
// @Header 200 {string} X-Pagination "Page metadata as JSON"
// @Router /moto [get]
func (h *MotorcycleHandler) List(c echo.Context) error {
	params := pageParams(c)
	motos, meta, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	data := make([]motoResource, 0, len(motos))
	for _, moto := range motos {
		data = append(data, newMotoResource(moto))
	}

	setPaginationHeader(c, meta)
	return c.JSON(http.StatusOK, listResponse{Metadata: meta, Data: data})
}

// Get godoc
// @Summary Get a motorcycle by id
// @Tags motos
// @Produce json
// @Param id path int true "Motorcycle ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 "Not found"
// @Router /moto/{id} [get]
func (h *MotorcycleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	moto, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return c.NoContent(http.StatusNotFound)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newMotoResource(*moto))
}

// Create godoc
// @Summary Register a motorcycle
// @Tags motos
// @Accept json
// @Produce json
// @Param moto body model.Motorcycle true "Motorcycle payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /moto [post]
func (h *MotorcycleHandler) Create(c echo.Context) error {
	var moto model.Motorcycle
	if err := c.Bind(&moto); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.Create(c.Request().Context(), &moto)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resource := newMotoResource(*created)
	c.Response().Header().Set(echo.HeaderLocation, resource.Links[0].Href)
	return c.JSON(http.StatusCreated, resource)
}

// Update godoc
// @Summary Update a motorcycle
// @Tags motos
// @Accept json
// @Param id path int true "Motorcycle ID"
// @Param moto body model.Motorcycle true "Motorcycle payload"
// @Success 204 "Updated"
// @Failure 400 {string} string "Id inconsistente"
// @Failure 404 "Not found"
// @Router /moto/{id} [put]
func (h *MotorcycleHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var moto model.Motorcycle
	if err := c.Bind(&moto); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if moto.ID != id {
		return c.String(http.StatusBadRequest, apperrors.ErrIDMismatch.Error())
	}
	if err := h.svc.Update(c.Request().Context(), &moto); err != nil {
		if apperrors.IsNotFound(err) {
			return c.NoContent(http.StatusNotFound)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete godoc
// @Summary Remove a motorcycle
// @Tags motos
// @Param id path int true "Motorcycle ID"
// @Success 204 "Deleted"
// @Failure 404 "Not found"
// @Router /moto/{id} [delete]
func (h *MotorcycleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			return c.NoContent(http.StatusNotFound)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
