package response

import "paysadmin/internal/usecase"

// DebtActionResponse reports the outcome of one transition request. Profile
// is included only when the update was applied, carrying the post-update
// refetch the view re-renders from.
type DebtActionResponse struct {
	Outcome string           `json:"outcome"`
	Message string           `json:"message"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

func FromTransitionResult(r usecase.TransitionResult) DebtActionResponse {
	resp := DebtActionResponse{
		Outcome: string(r.Outcome),
		Message: r.Message,
	}
	if r.Outcome == usecase.OutcomeApplied {
		p := FromProfile(r.Profile)
		resp.Profile = &p
	}
	return resp
}
