package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yardflow/internal/model"
	"yardflow/internal/pagination"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, p pagination.Params) ([]model.User, pagination.Metadata, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Get(1).(pagination.Metadata), args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(pagination.Metadata), args.Error(2)
}

func (m *MockUserService) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newUserEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func TestUserHandler_Create(t *testing.T) {
	e := newUserEcho()

	t.Run("valid payload creates and never echoes the password", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Nome == "Maria" && u.Senha == "segredo1"
		})).Return(&model.User{ID: 3, Nome: "Maria", Email: "maria@example.com", Senha: "segredo1", Funcao: "admin"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/usuarios",
			strings.NewReader(`{"nome":"Maria","email":"maria@example.com","senha":"segredo1","funcao":"admin"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := NewUserHandler(svc).Create(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/usuarios/3", rec.Header().Get(echo.HeaderLocation))
		assert.NotContains(t, rec.Body.String(), "senha")
		assert.NotContains(t, rec.Body.String(), "segredo1")

		var body userResource
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, uint(3), body.ID)
		assert.Len(t, body.Links, 3)
	})

	t.Run("invalid payload is a 400 with field messages", func(t *testing.T) {
		svc := new(MockUserService)

		// password below six characters and malformed email
		req := httptest.NewRequest(http.MethodPost, "/api/usuarios",
			strings.NewReader(`{"nome":"Maria","email":"not-an-email","senha":"abc","funcao":"admin"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := NewUserHandler(svc).Create(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)

		messages, ok := httpErr.Message.(map[string]string)
		assert.True(t, ok)
		assert.Contains(t, messages, "Email")
		assert.Contains(t, messages, "Senha")
		svc.AssertNotCalled(t, "Create")
	})
}

func TestUserHandler_Update(t *testing.T) {
	e := newUserEcho()

	svc := new(MockUserService)

	req := httptest.NewRequest(http.MethodPut, "/",
		strings.NewReader(`{"id":9,"nome":"Maria","email":"maria@example.com","senha":"segredo1","funcao":"admin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/usuarios/:id")
	c.SetParamNames("id")
	c.SetParamValues("2")

	err := NewUserHandler(svc).Update(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Id inconsistente", rec.Body.String())
}

func TestUserHandler_List(t *testing.T) {
	e := newUserEcho()

	svc := new(MockUserService)
	svc.On("List", mock.Anything, pagination.Params{Page: 2, Size: 5}).
		Return([]model.User{{ID: 6, Nome: "Maria", Email: "maria@example.com", Senha: "segredo1", Funcao: "admin"}},
			pagination.Metadata{TotalItems: 6, PageSize: 5, CurrentPage: 2, TotalPages: 2}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/usuarios?pageNumber=2&pageSize=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewUserHandler(svc).List(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "segredo1")
	assert.NotEmpty(t, rec.Header().Get(XPaginationHeader))
}
