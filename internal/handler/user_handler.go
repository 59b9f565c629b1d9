package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "yardflow/internal/errors"
	"yardflow/internal/links"
	"yardflow/internal/model"
	"yardflow/internal/service"
)

const userBasePath = "/api/usuarios"

// UserHandler handles user account endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// userRequest is the write payload for users. The password is accepted here
// but never echoed back.
type userRequest struct {
	ID     uint   `json:"id"`
	Nome   string `json:"nome" validate:"required,max=100"`
	Email  string `json:"email" validate:"required,email,max=100"`
	Senha  string `json:"senha" validate:"required,min=6,max=100"`
	Funcao string `json:"funcao" validate:"required,max=50"`
}

func (r userRequest) toModel() *model.User {
	return &model.User{
		ID:     r.ID,
		Nome:   r.Nome,
		Email:  r.Email,
		Senha:  r.Senha,
		Funcao: r.Funcao,
	}
}

// userResource is a user representation with its hypermedia relations.
type userResource struct {
	ID     uint         `json:"id"`
	Nome   string       `json:"nome"`
	Email  string       `json:"email"`
	Funcao string       `json:"funcao"`
	Links  []links.Link `json:"links"`
}

func newUserResource(user model.User) userResource {
	return userResource{
		ID:     user.ID,
		Nome:   user.Nome,
		Email:  user.Email,
		Funcao: user.Funcao,
		Links:  links.For(userBasePath, user.ID),
	}
}

// List godoc
// @Summary List users (paginated)
// @Tags usuarios
// @Produce json
// @Param pageNumber query int false "Page number (default 1)"
// @Param pageSize query int false "Items per page (default 5)"
// @Success 200 {object} map[string]interface{}
// @Header 200 {string} X-Pagination "Page metadata as JSON"
// @Router /usuarios [get]
func (h *UserHandler) List(c echo.Context) error {
	params := pageParams(c)
	users, meta, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	data := make([]userResource, 0, len(users))
	for _, user := range users {
		data = append(data, newUserResource(user))
	}

	setPaginationHeader(c, meta)
	return c.JSON(http.StatusOK, listResponse{Metadata: meta, Data: data})
}

// Get godoc
// @Summary Get a user by id
// @Tags usuarios
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 "Not found"
// @Router /usuarios/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return c.NoContent(http.StatusNotFound)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newUserResource(*user))
}

// Create godoc
// @Summary Register a user
// @Tags usuarios
// @Accept json
// @Produce json
// @Param user body userRequest true "User payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Field-level validation messages"
// @Router /usuarios [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessages(err))
	}
	created, err := h.svc.Create(c.Request().Context(), req.toModel())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resource := newUserResource(*created)
	c.Response().Header().Set(echo.HeaderLocation, resource.Links[0].Href)
	return c.JSON(http.StatusCreated, resource)
}

// Update godoc
// @Summary Update a user
// @Tags usuarios
// @Accept json
// @Param id path int true "User ID"
// @Param user body userRequest true "User payload"
// @Success 204 "Updated"
// @Failure 400 {string} string "Id inconsistente"
// @Failure 404 "Not found"
// @Router /usuarios/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ID != id {
		return c.String(http.StatusBadRequest, apperrors.ErrIDMismatch.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessages(err))
	}
	if err := h.svc.Update(c.Request().Context(), req.toModel()); err != nil {
		if apperrors.IsNotFound(err) {
			return c.NoContent(http.StatusNotFound)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete godoc
// @Summary Remove a user
// @Tags usuarios
// @Param id path int true "User ID"
// @Success 204 "Deleted"
// @Failure 404 "Not found"
// @Router /usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
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
