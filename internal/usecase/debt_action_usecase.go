package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"paysadmin/internal/domain/entities"
	"paysadmin/internal/usecase/interfaces"
)

var (
	ErrNotAuthenticated      = errors.New("admin authorization required")
	ErrInvalidDebtID         = errors.New("invalid debt id")
	ErrInvalidUniqueUserID   = errors.New("invalid unique user id")
	ErrInvalidDebtAction     = errors.New("invalid debt action")
	ErrInvalidAdjustedAmount = errors.New("invalid adjusted amount")
	ErrDebtAlreadySettled    = errors.New("debt already settled")
	ErrActionNotAllowed      = errors.New("action not allowed in current state")
	ErrUpdateInFlight        = errors.New("an update for this debt is already in flight")
)

// DebtAction names one operator action on a debt request.
type DebtAction string

const (
	ActionApprove        DebtAction = "approve"
	ActionReject         DebtAction = "reject"
	ActionMarkPaid       DebtAction = "markPaid"
	ActionUpdateAdjusted DebtAction = "updateAdjustedAmount"
)

// TransitionOutcome classifies what SubmitTransition did.
type TransitionOutcome string

const (
	// OutcomeApplied means the update was sent upstream and the profile refetched.
	OutcomeApplied TransitionOutcome = "applied"
	// OutcomeNoop means the row is already in the target state; nothing was sent.
	OutcomeNoop TransitionOutcome = "noop"
	// OutcomeConfirmationRequired means the caller must re-invoke with Confirmed
	// set; nothing was sent.
	OutcomeConfirmationRequired TransitionOutcome = "confirmation_required"
)

// TransitionCommand is one requested state change for a debt row. CurrentState
// and CurrentlyPaid describe the row as the caller last saw it; the backend
// remains the source of truth and is never mutated optimistically.
type TransitionCommand struct {
	UniqueUserID   string
	DebtID         string
	Action         DebtAction
	CurrentState   entities.ApprovalState
	CurrentlyPaid  bool
	AdjustedAmount float64
	Confirmed      bool
}

// TransitionResult reports the outcome. Profile is populated only for
// OutcomeApplied and carries the post-update refetch.
type TransitionResult struct {
	Outcome TransitionOutcome
	Message string
	Profile entities.UserProfile
}

// IDebtActionUseCase is the debt-request lifecycle controller.
//
// Allowed transitions per row:
//
//	pending  --approve-->  approved
//	pending  --reject-->   rejected
//	approved --reject-->   rejected      (confirmation)
//	rejected --approve-->  approved      (confirmation)
//	approved --markPaid--> paid          (confirmation + valid adjusted amount)
//	approved --updateAdjustedAmount--> approved
//
// paid is terminal; approve/reject onto the current state is a no-op notice.

type IDebtActionUseCase interface {
	SubmitTransition(ctx context.Context, token string, cmd TransitionCommand) (TransitionResult, error)
	Busy(debtID string) bool
}

type DebtActionUseCase struct {
	gateway interfaces.IPaysGateway

	mu       sync.Mutex
	inFlight map[string]bool
}

var _ IDebtActionUseCase = (*DebtActionUseCase)(nil)

func NewDebtActionUseCase(gateway interfaces.IPaysGateway) *DebtActionUseCase {
	return &DebtActionUseCase{
		gateway:  gateway,
		inFlight: map[string]bool{},
	}
}

// Busy reports whether an update for the given debt id is currently in flight.
func (u *DebtActionUseCase) Busy(debtID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.inFlight[debtID]
}

func (u *DebtActionUseCase) acquire(debtID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.inFlight[debtID] {
		return false
	}
	u.inFlight[debtID] = true
	return true
}

func (u *DebtActionUseCase) release(debtID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inFlight, debtID)
}

// SubmitTransition validates and performs one debt transition. The per-debt
// busy flag is taken only once validation has passed, immediately before the
// upstream call, and released on every exit path.
func (u *DebtActionUseCase) SubmitTransition(ctx context.Context, token string, cmd TransitionCommand) (TransitionResult, error) {
	if strings.TrimSpace(token) == "" {
		return TransitionResult{}, ErrNotAuthenticated
	}
	cmd.UniqueUserID = strings.TrimSpace(cmd.UniqueUserID)
	cmd.DebtID = strings.TrimSpace(cmd.DebtID)
	if cmd.UniqueUserID == "" {
		return TransitionResult{}, ErrInvalidUniqueUserID
	}
	if cmd.DebtID == "" {
		return TransitionResult{}, ErrInvalidDebtID
	}
	if cmd.CurrentlyPaid {
		return TransitionResult{}, ErrDebtAlreadySettled
	}
	current := entities.NormalizeApprovalState(string(cmd.CurrentState))

	upd := entities.DebtUpdate{
		UniqueUserID: cmd.UniqueUserID,
		DebtID:       cmd.DebtID,
	}
	var successMsg string

	switch cmd.Action {
	case ActionApprove:
		if current == entities.ApprovalApproved {
			return noop("This request is already approved. Reject it if you want to change the status."), nil
		}
		if current == entities.ApprovalRejected && !cmd.Confirmed {
			return confirm("Approve this previously rejected request?"), nil
		}
		upd.Approved = entities.ApprovalApproved
		successMsg = "Debt approved successfully"

	case ActionReject:
		if current == entities.ApprovalRejected {
			return noop("This request is already rejected. Approve it if you want to change the status."), nil
		}
		if current == entities.ApprovalApproved && !cmd.Confirmed {
			return confirm("Reject this approved request?"), nil
		}
		upd.Approved = entities.ApprovalRejected
		successMsg = "Debt rejected successfully"

	case ActionMarkPaid:
		if current != entities.ApprovalApproved {
			return TransitionResult{}, ErrActionNotAllowed
		}
		amount, err := flooredAmount(cmd.AdjustedAmount)
		if err != nil {
			return TransitionResult{}, err
		}
		if !cmd.Confirmed {
			return confirm(fmt.Sprintf("Mark this debt as paid with adjusted amount %d? This cannot be undone.", amount)), nil
		}
		upd.Approved = entities.ApprovalApproved
		upd.AdjustedAmount = amount
		upd.Paid = true
		successMsg = "Debt marked as paid successfully"

	case ActionUpdateAdjusted:
		if current != entities.ApprovalApproved {
			return TransitionResult{}, ErrActionNotAllowed
		}
		amount, err := flooredAmount(cmd.AdjustedAmount)
		if err != nil {
			return TransitionResult{}, err
		}
		upd.Approved = entities.ApprovalApproved
		upd.AdjustedAmount = amount
		successMsg = "Adjusted amount updated successfully"

	default:
		return TransitionResult{}, ErrInvalidDebtAction
	}

	if !u.acquire(cmd.DebtID) {
		return TransitionResult{}, ErrUpdateInFlight
	}
	defer u.release(cmd.DebtID)

	log.Printf("[debt][usecase] submit action=%s debt_id=%s target=%s paid=%t", cmd.Action, cmd.DebtID, upd.Approved, upd.Paid)
	if _, err := u.gateway.UpdateUserDebt(ctx, token, upd); err != nil {
		log.Printf("[debt][usecase] update failed debt_id=%s err=%v", cmd.DebtID, err)
		return TransitionResult{}, err
	}

	// One refetch per successful update; the view is rebuilt from the server,
	// never from the command.
	profile, err := u.gateway.GetUserProfile(ctx, token, cmd.UniqueUserID)
	if err != nil {
		log.Printf("[debt][usecase] refetch after update failed debt_id=%s err=%v", cmd.DebtID, err)
		return TransitionResult{Outcome: OutcomeApplied, Message: successMsg}, nil
	}

	log.Printf("[debt][usecase] applied action=%s debt_id=%s", cmd.Action, cmd.DebtID)
	return TransitionResult{Outcome: OutcomeApplied, Message: successMsg, Profile: profile}, nil
}

func flooredAmount(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidAdjustedAmount
	}
	return int64(math.Floor(v)), nil
}

func noop(msg string) TransitionResult {
	return TransitionResult{Outcome: OutcomeNoop, Message: msg}
}

func confirm(msg string) TransitionResult {
	return TransitionResult{Outcome: OutcomeConfirmationRequired, Message: msg}
}
