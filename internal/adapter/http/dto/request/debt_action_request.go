package request

import (
	"math"
	"strings"
)

// DebtActionRequest is one requested transition on a debt row.
//
// CurrentStatus and Paid echo the row as the caller's view last rendered it.
// Confirm is the explicit re-invocation flag for consequential transitions;
// the first call without it gets a confirmation-required response instead of
// a blocking prompt.
type DebtActionRequest struct {
	Action         string   `json:"action" binding:"required"`
	CurrentStatus  string   `json:"current_status"`
	Paid           bool     `json:"paid"`
	AdjustedAmount *float64 `json:"adjusted_amount"`
	Confirm        bool     `json:"confirm"`
}

func (r DebtActionRequest) ResolveAction() string {
	return strings.TrimSpace(r.Action)
}

// ResolveAmount returns the adjusted amount, or NaN when none was supplied so
// amount-carrying actions fail validation rather than defaulting to zero.
func (r DebtActionRequest) ResolveAmount() float64 {
	if r.AdjustedAmount == nil {
		return math.NaN()
	}
	return *r.AdjustedAmount
}
