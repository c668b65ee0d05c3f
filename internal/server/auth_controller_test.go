package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvquang/product-api/internal/models"
	pkgmdw "github.com/nvquang/product-api/internal/server/middleware"
	"github.com/nvquang/product-api/internal/usecase"
)

type fakeAuthUsecase struct {
	revoked []string
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req models.LoginRequest, userAgent, ipAddress string) (*models.LoginResponse, error) {
	if req.Password != "s3cret" {
		return nil, usecase.ErrInvalidCredentials
	}
	return &models.LoginResponse{
		Token: "issued-token",
		User:  models.User{Email: req.Email, Role: models.RoleAdmin},
	}, nil
}

func (f *fakeAuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*models.User, error) {
	return &models.User{Role: models.RoleAdmin}, nil
}

func (f *fakeAuthUsecase) RevokeToken(ctx context.Context, tokenString string) error {
	f.revoked = append(f.revoked, tokenString)
	return nil
}

func newAuthTestContext(t *testing.T, body, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = pkgmdw.NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthController_Login(t *testing.T) {
	ac := NewAuthController(&fakeAuthUsecase{})
	c, rec := newAuthTestContext(t, `{"email":"admin@example.com","password":"s3cret"}`, "")

	require.NoError(t, ac.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"issued-token"`)
}

func TestAuthController_LoginWrongPassword(t *testing.T) {
	ac := NewAuthController(&fakeAuthUsecase{})
	c, rec := newAuthTestContext(t, `{"email":"admin@example.com","password":"nope"}`, "")

	require.NoError(t, ac.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthController_LoginMissingEmail(t *testing.T) {
	ac := NewAuthController(&fakeAuthUsecase{})
	c, rec := newAuthTestContext(t, `{"password":"s3cret"}`, "")

	require.NoError(t, ac.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthController_Logout(t *testing.T) {
	uc := &fakeAuthUsecase{}
	ac := NewAuthController(uc)
	c, rec := newAuthTestContext(t, "", "Bearer issued-token")

	require.NoError(t, ac.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"issued-token"}, uc.revoked)
}

func TestAuthController_LogoutWithoutHeader(t *testing.T) {
	ac := NewAuthController(&fakeAuthUsecase{})
	c, rec := newAuthTestContext(t, "", "")

	require.NoError(t, ac.Logout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
