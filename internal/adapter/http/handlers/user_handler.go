package handlers

import (
	"errors"
	"net/http"

	response "paysadmin/internal/adapter/http/dto/response"
	"paysadmin/internal/adapter/http/middleware"
	"paysadmin/internal/usecase"
	"paysadmin/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the admin directory views: the user list, the dashboard
// aggregates and the per-user profile.

type UserHandler struct {
	usecase usecase.IDirectoryUseCase
}

func NewUserHandler(uc usecase.IDirectoryUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// ListUsers returns all users, filtered when ?search= is present.
func (h *UserHandler) ListUsers(c *gin.Context) {
	token := middleware.UpstreamToken(c)

	users, err := h.usecase.Search(c.Request.Context(), token, c.Query("search"))
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": response.FromUsers(users)})
}

// Stats returns the dashboard aggregates.
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context(), middleware.UpstreamToken(c))
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStats(stats))
}

// GetProfile returns the aggregate view for one user.
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.usecase.GetProfile(c.Request.Context(), middleware.UpstreamToken(c), c.Param("unique_id"))
	if err != nil {
		appErr := mapDirectoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(profile))
}

func mapDirectoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid user id", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
