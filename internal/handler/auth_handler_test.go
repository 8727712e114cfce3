package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/liveartfest/ticketing/internal/dto"
	"github.com/liveartfest/ticketing/internal/models"
	"github.com/liveartfest/ticketing/internal/service"
)

// --- Mock UserService ---

type mockUserService struct {
	createFn         func(ctx context.Context, name, emailAddress, password string) (*models.User, error)
	getFn            func(ctx context.Context, id uint) (*models.User, error)
	listFn           func(ctx context.Context) ([]models.User, error)
	updateNameFn     func(ctx context.Context, id uint, name string) (*models.User, error)
	updatePasswordFn func(ctx context.Context, id uint, password string) (*models.User, error)
	deleteFn         func(ctx context.Context, id uint) error
	listAdminsFn     func(ctx context.Context) ([]models.User, error)
	promoteFn        func(ctx context.Context, emailAddress string) error
	demoteFn         func(ctx context.Context, id, callerID uint) error
	authenticateFn   func(ctx context.Context, emailAddress, password string) (*models.User, string, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, name, emailAddress, password string) (*models.User, error) {
	return m.createFn(ctx, name, emailAddress, password)
}
func (m *mockUserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return m.getFn(ctx, id)
}
func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}
func (m *mockUserService) UpdateName(ctx context.Context, id uint, name string) (*models.User, error) {
	return m.updateNameFn(ctx, id, name)
}
func (m *mockUserService) UpdatePassword(ctx context.Context, id uint, password string) (*models.User, error) {
	return m.updatePasswordFn(ctx, id, password)
}
func (m *mockUserService) DeleteUser(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockUserService) ListAdmins(ctx context.Context) ([]models.User, error) {
	return m.listAdminsFn(ctx)
}
func (m *mockUserService) PromoteAdmin(ctx context.Context, emailAddress string) error {
	return m.promoteFn(ctx, emailAddress)
}
func (m *mockUserService) DemoteAdmin(ctx context.Context, id, callerID uint) error {
	return m.demoteFn(ctx, id, callerID)
}
func (m *mockUserService) Authenticate(ctx context.Context, emailAddress, password string) (*models.User, string, error) {
	return m.authenticateFn(ctx, emailAddress, password)
}

// --- Tests ---

func authContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_Handler_Success(t *testing.T) {
	svc := &mockUserService{
		authenticateFn: func(ctx context.Context, emailAddress, password string) (*models.User, string, error) {
			assert.Equal(t, "ada@example.com", emailAddress)
			assert.Equal(t, "hunter22", password)
			return &models.User{ID: 1, EmailAddress: emailAddress, IsAdmin: true}, "signed-token", nil
		},
	}

	c, rec := authContext(`{"emailAddress":"ada@example.com","password":"hunter22"}`)
	h := NewAuthHandler(svc)
	err := h.Authenticate(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AuthResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, uint(1), resp.UserID)
	assert.True(t, resp.IsAdmin)
}

func TestAuthenticate_Handler_BadCredentials(t *testing.T) {
	svc := &mockUserService{
		authenticateFn: func(ctx context.Context, emailAddress, password string) (*models.User, string, error) {
			return nil, "", service.ErrBadCredentials
		},
	}

	c, _ := authContext(`{"emailAddress":"ada@example.com","password":"wrong"}`)
	h := NewAuthHandler(svc)
	err := h.Authenticate(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAuthenticate_Handler_MissingFields(t *testing.T) {
	c, _ := authContext(`{"emailAddress":"ada@example.com"}`)
	h := NewAuthHandler(&mockUserService{})
	err := h.Authenticate(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
