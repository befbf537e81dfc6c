package handlers

import (
	"errors"
	"log"
	"net/http"

	request "paysadmin/internal/adapter/http/dto/request"
	response "paysadmin/internal/adapter/http/dto/response"
	"paysadmin/internal/adapter/http/middleware"
	"paysadmin/internal/domain/entities"
	"paysadmin/internal/usecase"
	"paysadmin/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDebtPayload = pkg.NewDomainErrorSimple("INVALID_DEBT_INPUT", "Invalid debt action payload", http.StatusBadRequest)

// DebtHandler drives the debt-request lifecycle workflow.

type DebtHandler struct {
	usecase usecase.IDebtActionUseCase
}

func NewDebtHandler(uc usecase.IDebtActionUseCase) *DebtHandler {
	return &DebtHandler{usecase: uc}
}

// SubmitAction performs one transition on a debt row. A consequential
// transition invoked without confirm=true answers 409 with the prompt; the
// caller re-submits with confirm set.
func (h *DebtHandler) SubmitAction(c *gin.Context) {
	var payload request.DebtActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDebtPayload.HTTPStatus, errInvalidDebtPayload.ToHTTPError())
		return
	}

	cmd := usecase.TransitionCommand{
		UniqueUserID:   c.Param("unique_id"),
		DebtID:         c.Param("debt_id"),
		Action:         usecase.DebtAction(payload.ResolveAction()),
		CurrentState:   entities.NormalizeApprovalState(payload.CurrentStatus),
		CurrentlyPaid:  payload.Paid,
		AdjustedAmount: payload.ResolveAmount(),
		Confirmed:      payload.Confirm,
	}

	result, err := h.usecase.SubmitTransition(c.Request.Context(), middleware.UpstreamToken(c), cmd)
	if err != nil {
		log.Printf("[debt][handler] action failed debt_id=%s action=%s err=%v", cmd.DebtID, cmd.Action, err)
		appErr := mapDebtActionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if result.Outcome == usecase.OutcomeConfirmationRequired {
		status = http.StatusConflict
	}
	c.JSON(status, response.FromTransitionResult(result))
}

func mapDebtActionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDebtID),
		errors.Is(err, usecase.ErrInvalidUniqueUserID),
		errors.Is(err, usecase.ErrInvalidDebtAction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAdjustedAmount):
		return pkg.NewDomainErrorSimple("INVALID_ADJUSTED_AMOUNT", "Please enter a valid positive number for adjusted amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDebtAlreadySettled):
		return pkg.NewDomainErrorSimple("DEBT_SETTLED", "This debt is already paid and cannot be changed", http.StatusConflict)
	case errors.Is(err, usecase.ErrActionNotAllowed):
		return pkg.NewDomainErrorSimple("ACTION_NOT_ALLOWED", "This action is not allowed in the request's current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrUpdateInFlight):
		return pkg.NewDomainErrorSimple("UPDATE_IN_FLIGHT", "An update for this debt is already in progress", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
