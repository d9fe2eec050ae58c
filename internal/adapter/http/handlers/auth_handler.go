package handlers

import (
	"errors"
	"net/http"

	"delivery_hub/internal/adapter/http/dto/request"
	"delivery_hub/internal/adapter/http/dto/response"
	"delivery_hub/internal/adapter/http/middleware"
	"delivery_hub/internal/infrastructure/auth"
	"delivery_hub/internal/usecase"
	"delivery_hub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload    = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS_INPUT", "Preencha todos os campos", http.StatusBadRequest)
	errInvalidRegisterPayload = pkg.NewDomainErrorSimple("INVALID_REGISTRATION_INPUT", "Preencha todos os campos obrigatórios", http.StatusBadRequest)
)

// AuthHandler handles the session lifecycle endpoints: login, register,
// logout, profile and the weather snapshot.

type AuthHandler struct {
	usecase   usecase.ISessionUseCase
	jwtSecret string
}

func NewAuthHandler(uc usecase.ISessionUseCase, jwtSecret string) *AuthHandler {
	return &AuthHandler{usecase: uc, jwtSecret: jwtSecret}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := auth.GenerateSessionToken(h.jwtSecret, session.ID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session, token, "Login realizado com sucesso!"))
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegisterPayload.HTTPStatus, errInvalidRegisterPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Register(c.Request.Context(), payload.ToRegistration())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := auth.GenerateSessionToken(h.jwtSecret, session.ID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session, token, "Conta criada com sucesso! Bem-vindo!"))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), c.GetString(middleware.SessionIDKey)); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout realizado com sucesso!"})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	session, err := h.usecase.Profile(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(session))
}

func (h *AuthHandler) Weather(c *gin.Context) {
	weather, err := h.usecase.Weather(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWeather(weather))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return pkg.NewDomainErrorSimple("MISSING_CREDENTIALS", "Preencha todos os campos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingRegistrationFields):
		return pkg.NewDomainErrorSimple("MISSING_REGISTRATION_FIELDS", "Preencha todos os campos obrigatórios", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Sessão expirada. Faça login novamente.", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
