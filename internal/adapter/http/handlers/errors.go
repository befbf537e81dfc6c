package handlers

import (
	"errors"
	"net/http"

	"paysadmin/internal/infrastructure/paysapi"
	"paysadmin/internal/usecase"
	"paysadmin/pkg"
)

// mapCommonError translates usecase and upstream failures shared by every
// handler. Handler-specific mappings wrap this.
func mapCommonError(err error) *pkg.AppError {
	var upstream *paysapi.UpstreamError
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated), errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Admin authorization required", http.StatusUnauthorized)
	case errors.Is(err, paysapi.ErrUnrecognizedEnvelope):
		return pkg.NewDomainError("FORMAT_ERROR", "Upstream response was not in a recognized format", err, http.StatusBadGateway)
	case errors.Is(err, paysapi.ErrNoToken):
		return pkg.NewDomainError("UPSTREAM_ERROR", "Authentication failed: no token returned", err, http.StatusBadGateway)
	case errors.As(err, &upstream):
		if upstream.Status == http.StatusUnauthorized || upstream.Status == http.StatusForbidden {
			return pkg.NewDomainError("UPSTREAM_UNAUTHORIZED", upstream.Message, err, http.StatusUnauthorized)
		}
		return pkg.NewDomainError("UPSTREAM_ERROR", upstream.Message, err, http.StatusBadGateway)
	default:
		return pkg.NewInternalError(err)
	}
}
