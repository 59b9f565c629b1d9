package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "yardflow/internal/errors"
	"yardflow/internal/model"
	"yardflow/internal/pricing"
	"yardflow/internal/service"
)

// RentalHandler handles rental pricing endpoints.
type RentalHandler struct {
	svc service.RentalService
}

// NewRentalHandler creates a new rental handler.
func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

// CalculateRequest is the rental pricing payload.
type CalculateRequest struct {
	MotoID      uint       `json:"motoId"`
	DataInicial model.Date `json:"dataInicial"`
	DataFinal   model.Date `json:"dataFinal"`
}

// Calculate godoc
// @Summary Calculate the total cost of a rental
// @Tags locacoes
// @Accept json
// @Produce json
// @Param rental body CalculateRequest true "Rental request"
// @Success 200 {object} service.Quote
// @Failure 404 {string} string "Moto {id} não encontrado."
// @Failure 400 {string} string "Invalid date range (reject policy only)"
// @Router /locacoes/calcular [post]
func (h *RentalHandler) Calculate(c echo.Context) error {
	var req CalculateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quote, err := h.svc.Calculate(c.Request().Context(), req.MotoID, req.DataInicial, req.DataFinal)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return c.String(http.StatusNotFound, err.Error())
		}
		if errors.Is(err, pricing.ErrInvertedRange) {
			return c.String(http.StatusBadRequest, err.Error())
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, quote)
}

// List godoc
// @Summary List stored rentals (paginated)
// @Tags locacoes
// @Produce json
// @Param pageNumber query int false "Page number (default 1)"
// @Param pageSize query int false "Items per page (default 5)"
// @Success 200 {object} map[string]interface{}
// @Header 200 {string} X-Pagination "Page metadata as JSON"
// @Router /locacoes [get]
func (h *RentalHandler) List(c echo.Context) error {
	params := pageParams(c)
	rentals, meta, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	setPaginationHeader(c, meta)
	return c.JSON(http.StatusOK, listResponse{Metadata: meta, Data: rentals})
}
