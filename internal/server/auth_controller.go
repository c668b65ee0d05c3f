package server

import (
	"errors"
	"net/http"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"

	"github.com/nvquang/product-api/internal/models"
	"github.com/nvquang/product-api/internal/usecase"
)

type AuthController interface {
	Login(c echo.Context) error
	Logout(c echo.Context) error
}

type authController struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthController(authUsecase usecase.AuthUsecase) AuthController {
	return &authController{
		authUsecase: authUsecase,
	}
}

func (ac *authController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	userAgent := c.Request().Header.Get("User-Agent")
	ipAddress := c.RealIP()

	response, err := ac.authUsecase.Login(ctx, req, userAgent, ipAddress)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		log.Errorw(ctx, "failed to login", "email", req.Email, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Something went wrong!"})
	}

	return c.JSON(http.StatusOK, response)
}

func (ac *authController) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid authorization header"})
	}

	ctx := c.Request().Context()
	if err := ac.authUsecase.RevokeToken(ctx, tokenString); err != nil {
		log.Errorw(ctx, "failed to revoke token", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Something went wrong!"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "logged out successfully"})
}
