package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"paysadmin/internal/domain/entities"
	mock_interfaces "paysadmin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingCmd(action DebtAction) TransitionCommand {
	return TransitionCommand{
		UniqueUserID: "u-1",
		DebtID:       "d-1",
		Action:       action,
		CurrentState: entities.ApprovalPending,
	}
}

func TestDebtActionUseCase_Validation(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		uc := NewDebtActionUseCase(nil)
		_, err := uc.SubmitTransition(context.Background(), "   ", pendingCmd(ActionApprove))
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("missing unique user id", func(t *testing.T) {
		uc := NewDebtActionUseCase(nil)
		cmd := pendingCmd(ActionApprove)
		cmd.UniqueUserID = "  "
		_, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if !errors.Is(err, ErrInvalidUniqueUserID) {
			t.Fatalf("expected ErrInvalidUniqueUserID, got %v", err)
		}
	})

	t.Run("missing debt id", func(t *testing.T) {
		uc := NewDebtActionUseCase(nil)
		cmd := pendingCmd(ActionApprove)
		cmd.DebtID = ""
		_, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if !errors.Is(err, ErrInvalidDebtID) {
			t.Fatalf("expected ErrInvalidDebtID, got %v", err)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		uc := NewDebtActionUseCase(nil)
		_, err := uc.SubmitTransition(context.Background(), "tok", pendingCmd("settle"))
		if !errors.Is(err, ErrInvalidDebtAction) {
			t.Fatalf("expected ErrInvalidDebtAction, got %v", err)
		}
	})

	t.Run("paid row is terminal", func(t *testing.T) {
		uc := NewDebtActionUseCase(nil)
		cmd := pendingCmd(ActionApprove)
		cmd.CurrentState = entities.ApprovalApproved
		cmd.CurrentlyPaid = true
		_, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if !errors.Is(err, ErrDebtAlreadySettled) {
			t.Fatalf("expected ErrDebtAlreadySettled, got %v", err)
		}
	})
}

// Same-state approve/reject must return a notice without touching the network.
// The mock has no expectations, so any gateway call fails the test.
func TestDebtActionUseCase_SameStateNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIPaysGateway(ctrl)
	uc := NewDebtActionUseCase(gw)

	t.Run("approve already approved", func(t *testing.T) {
		cmd := pendingCmd(ActionApprove)
		cmd.CurrentState = entities.ApprovalApproved
		res, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeNoop {
			t.Fatalf("expected noop, got %s", res.Outcome)
		}
		if !strings.Contains(res.Message, "already approved") {
			t.Fatalf("unexpected message: %q", res.Message)
		}
	})

	t.Run("reject already rejected", func(t *testing.T) {
		cmd := pendingCmd(ActionReject)
		cmd.CurrentState = entities.ApprovalRejected
		res, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeNoop {
			t.Fatalf("expected noop, got %s", res.Outcome)
		}
	})
}

func TestDebtActionUseCase_ConfirmationGating(t *testing.T) {
	t.Run("reject an approved request needs confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaysGateway(ctrl)
		uc := NewDebtActionUseCase(gw)

		cmd := pendingCmd(ActionReject)
		cmd.CurrentState = entities.ApprovalApproved
		res, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeConfirmationRequired {
			t.Fatalf("expected confirmation_required, got %s", res.Outcome)
		}
	})

	t.Run("approve a rejected request needs confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaysGateway(ctrl)
		uc := NewDebtActionUseCase(gw)

		cmd := pendingCmd(ActionApprove)
		cmd.CurrentState = entities.ApprovalRejected
		res, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeConfirmationRequired {
			t.Fatalf("expected confirmation_required, got %s", res.Outcome)
		}
	})

	t.Run("confirmed reversal goes upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaysGateway(ctrl)
		uc := NewDebtActionUseCase(gw)

		gw.EXPECT().UpdateUserDebt(gomock.Any(), "tok", gomock.AssignableToTypeOf(entities.DebtUpdate{})).DoAndReturn(
			func(_ context.Context, _ string, upd entities.DebtUpdate) (string, error) {
				if upd.Approved != entities.ApprovalRejected || upd.Paid {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return "ok", nil
			},
		)
		gw.EXPECT().GetUserProfile(gomock.Any(), "tok", "u-1").Return(entities.UserProfile{}, nil)

		cmd := pendingCmd(ActionReject)
		cmd.CurrentState = entities.ApprovalApproved
		cmd.Confirmed = true
		res, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeApplied {
			t.Fatalf("expected applied, got %s", res.Outcome)
		}
	})
}

func TestDebtActionUseCase_MarkPaid(t *testing.T) {
	t.Run("only from approved", func(t *testing.T) {
		uc := NewDebtActionUseCase(nil)
		cmd := pendingCmd(ActionMarkPaid)
		cmd.AdjustedAmount = 100
		_, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if !errors.Is(err, ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})

	t.Run("rejects NaN amount", func(t *testing.T) {
		uc := NewDebtActionUseCase(nil)
		cmd := pendingCmd(ActionMarkPaid)
		cmd.CurrentState = entities.ApprovalApproved
		cmd.AdjustedAmount = math.NaN()
		cmd.Confirmed = true
		_, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if !errors.Is(err, ErrInvalidAdjustedAmount) {
			t.Fatalf("expected ErrInvalidAdjustedAmount, got %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		uc := NewDebtActionUseCase(nil)
		cmd := pendingCmd(ActionMarkPaid)
		cmd.CurrentState = entities.ApprovalApproved
		cmd.AdjustedAmount = -5
		cmd.Confirmed = true
		_, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if !errors.Is(err, ErrInvalidAdjustedAmount) {
			t.Fatalf("expected ErrInvalidAdjustedAmount, got %v", err)
		}
	})

	t.Run("needs confirmation before sending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaysGateway(ctrl)
		uc := NewDebtActionUseCase(gw)

		cmd := pendingCmd(ActionMarkPaid)
		cmd.CurrentState = entities.ApprovalApproved
		cmd.AdjustedAmount = 250.9
		res, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeConfirmationRequired {
			t.Fatalf("expected confirmation_required, got %s", res.Outcome)
		}
		if !strings.Contains(res.Message, "250") {
			t.Fatalf("expected floored amount in message, got %q", res.Message)
		}
	})

	t.Run("confirmed sends one update and one refetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaysGateway(ctrl)
		uc := NewDebtActionUseCase(gw)

		gw.EXPECT().UpdateUserDebt(gomock.Any(), "tok", gomock.AssignableToTypeOf(entities.DebtUpdate{})).DoAndReturn(
			func(_ context.Context, _ string, upd entities.DebtUpdate) (string, error) {
				if upd.UniqueUserID != "u-1" || upd.DebtID != "d-1" {
					t.Fatalf("unexpected ids: %+v", upd)
				}
				if !upd.Paid || upd.Approved != entities.ApprovalApproved || upd.AdjustedAmount != 250 {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return "ok", nil
			},
		).Times(1)
		gw.EXPECT().GetUserProfile(gomock.Any(), "tok", "u-1").Return(entities.UserProfile{
			User: &entities.User{UniqueID: "u-1"},
		}, nil).Times(1)

		cmd := pendingCmd(ActionMarkPaid)
		cmd.CurrentState = entities.ApprovalApproved
		cmd.AdjustedAmount = 250.9
		cmd.Confirmed = true
		res, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeApplied {
			t.Fatalf("expected applied, got %s", res.Outcome)
		}
		if res.Profile.User == nil || res.Profile.User.UniqueID != "u-1" {
			t.Fatalf("expected refetched profile, got %+v", res.Profile)
		}
	})
}

func TestDebtActionUseCase_UpdateAdjustedAmount(t *testing.T) {
	t.Run("only from approved", func(t *testing.T) {
		uc := NewDebtActionUseCase(nil)
		cmd := pendingCmd(ActionUpdateAdjusted)
		cmd.AdjustedAmount = 10
		_, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if !errors.Is(err, ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})

	t.Run("no confirmation needed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaysGateway(ctrl)
		uc := NewDebtActionUseCase(gw)

		gw.EXPECT().UpdateUserDebt(gomock.Any(), "tok", gomock.AssignableToTypeOf(entities.DebtUpdate{})).DoAndReturn(
			func(_ context.Context, _ string, upd entities.DebtUpdate) (string, error) {
				if upd.Paid || upd.AdjustedAmount != 99 {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return "ok", nil
			},
		)
		gw.EXPECT().GetUserProfile(gomock.Any(), "tok", "u-1").Return(entities.UserProfile{}, nil)

		cmd := pendingCmd(ActionUpdateAdjusted)
		cmd.CurrentState = entities.ApprovalApproved
		cmd.AdjustedAmount = 99.7
		res, err := uc.SubmitTransition(context.Background(), "tok", cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeApplied {
			t.Fatalf("expected applied, got %s", res.Outcome)
		}
	})
}

// A failed refetch still reports the update as applied; the caller just does
// not get a fresh profile.
func TestDebtActionUseCase_RefetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIPaysGateway(ctrl)
	uc := NewDebtActionUseCase(gw)

	gw.EXPECT().UpdateUserDebt(gomock.Any(), "tok", gomock.Any()).Return("ok", nil)
	gw.EXPECT().GetUserProfile(gomock.Any(), "tok", "u-1").Return(entities.UserProfile{}, errors.New("upstream down"))

	res, err := uc.SubmitTransition(context.Background(), "tok", pendingCmd(ActionApprove))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeApplied {
		t.Fatalf("expected applied, got %s", res.Outcome)
	}
	if res.Profile.User != nil {
		t.Fatalf("expected empty profile, got %+v", res.Profile)
	}
}

func TestDebtActionUseCase_BusyFlag(t *testing.T) {
	t.Run("held only during upstream call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaysGateway(ctrl)
		uc := NewDebtActionUseCase(gw)

		gw.EXPECT().UpdateUserDebt(gomock.Any(), "tok", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd entities.DebtUpdate) (string, error) {
				if !uc.Busy("d-1") {
					t.Fatalf("expected d-1 busy during upstream call")
				}
				if uc.Busy("d-2") {
					t.Fatalf("d-2 should not be affected")
				}
				return "ok", nil
			},
		)
		gw.EXPECT().GetUserProfile(gomock.Any(), "tok", "u-1").Return(entities.UserProfile{}, nil)

		if _, err := uc.SubmitTransition(context.Background(), "tok", pendingCmd(ActionApprove)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.Busy("d-1") {
			t.Fatalf("flag must be released after completion")
		}
	})

	t.Run("second submit for the same debt is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaysGateway(ctrl)
		uc := NewDebtActionUseCase(gw)

		gw.EXPECT().UpdateUserDebt(gomock.Any(), "tok", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.DebtUpdate) (string, error) {
				_, err := uc.SubmitTransition(context.Background(), "tok", pendingCmd(ActionApprove))
				if !errors.Is(err, ErrUpdateInFlight) {
					t.Fatalf("expected ErrUpdateInFlight, got %v", err)
				}
				return "ok", nil
			},
		)
		gw.EXPECT().GetUserProfile(gomock.Any(), "tok", "u-1").Return(entities.UserProfile{}, nil)

		if _, err := uc.SubmitTransition(context.Background(), "tok", pendingCmd(ActionApprove)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("validation failures do not take the flag", func(t *testing.T) {
		uc := NewDebtActionUseCase(nil)
		cmd := pendingCmd(ActionMarkPaid)
		cmd.CurrentState = entities.ApprovalApproved
		cmd.AdjustedAmount = -1
		if _, err := uc.SubmitTransition(context.Background(), "tok", cmd); err == nil {
			t.Fatalf("expected error")
		}
		if uc.Busy("d-1") {
			t.Fatalf("flag must stay clear after validation failure")
		}
	})
}

// Unknown state spellings normalize to pending, so approve goes straight
// upstream without a confirmation round trip.
func TestDebtActionUseCase_NormalizesUnknownState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIPaysGateway(ctrl)
	uc := NewDebtActionUseCase(gw)

	gw.EXPECT().UpdateUserDebt(gomock.Any(), "tok", gomock.Any()).Return("ok", nil)
	gw.EXPECT().GetUserProfile(gomock.Any(), "tok", "u-1").Return(entities.UserProfile{}, nil)

	cmd := pendingCmd(ActionApprove)
	cmd.CurrentState = entities.ApprovalState("awaiting-review")
	res, err := uc.SubmitTransition(context.Background(), "tok", cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeApplied {
		t.Fatalf("expected applied, got %s", res.Outcome)
	}
}
