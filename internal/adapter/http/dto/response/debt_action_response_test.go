package response

import (
	"testing"

	"paysadmin/internal/domain/entities"
	"paysadmin/internal/usecase"
)

func TestFromTransitionResult(t *testing.T) {
	t.Run("applied carries the profile", func(t *testing.T) {
		r := FromTransitionResult(usecase.TransitionResult{
			Outcome: usecase.OutcomeApplied,
			Message: "Debt approved successfully",
			Profile: entities.UserProfile{User: &entities.User{UniqueID: "UID-1"}},
		})
		if r.Outcome != "applied" || r.Profile == nil {
			t.Fatalf("unexpected response: %+v", r)
		}
		if r.Profile.User == nil || r.Profile.User.UniqueID != "UID-1" {
			t.Fatalf("unexpected profile: %+v", r.Profile)
		}
	})

	t.Run("confirmation required omits the profile", func(t *testing.T) {
		r := FromTransitionResult(usecase.TransitionResult{
			Outcome: usecase.OutcomeConfirmationRequired,
			Message: "Reject this approved request?",
		})
		if r.Outcome != "confirmation_required" || r.Profile != nil {
			t.Fatalf("unexpected response: %+v", r)
		}
	})

	t.Run("noop omits the profile", func(t *testing.T) {
		r := FromTransitionResult(usecase.TransitionResult{
			Outcome: usecase.OutcomeNoop,
			Message: "This request is already approved. Reject it if you want to change the status.",
		})
		if r.Outcome != "noop" || r.Profile != nil {
			t.Fatalf("unexpected response: %+v", r)
		}
	})
}

func TestFromDebt_Actionable(t *testing.T) {
	open := FromDebt(entities.DebtRequest{ID: "d1", Approval: entities.ApprovalApproved})
	if !open.Actionable {
		t.Fatalf("unpaid debt must be actionable")
	}
	settled := FromDebt(entities.DebtRequest{ID: "d2", Approval: entities.ApprovalApproved, Paid: true})
	if settled.Actionable {
		t.Fatalf("paid debt must not be actionable")
	}
}
