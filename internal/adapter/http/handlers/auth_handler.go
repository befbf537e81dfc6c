package handlers

import (
	"errors"
	"log"
	"net/http"

	request "paysadmin/internal/adapter/http/dto/request"
	response "paysadmin/internal/adapter/http/dto/response"
	"paysadmin/internal/adapter/http/middleware"
	"paysadmin/internal/usecase"
	"paysadmin/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Email and password are required", http.StatusBadRequest)

// AuthHandler handles operator login and logout.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login exchanges operator credentials for a session key.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.ResolveEmail(), payload.Password)
	if err != nil {
		log.Printf("[auth][handler] login failed email=%s err=%v", payload.ResolveEmail(), err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// Logout discards the caller's session.
func (h *AuthHandler) Logout(c *gin.Context) {
	key := middleware.SessionKey(c)
	if err := h.usecase.Logout(c.Request.Context(), key); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Email and password are required", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
