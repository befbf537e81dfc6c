package entities

import (
	"bytes"
	"encoding/json"
	"time"
)

// ApprovalState is the review outcome of a debt request.
//
// The upstream API is inconsistent about this field: newer records carry the
// three-state string, legacy records carry a boolean (true meant approved,
// false meant "not decided yet"). We normalize both to this enum at the
// decoding boundary and never let the boolean form past it.

type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
)

// NormalizeApprovalState maps any upstream spelling onto the canonical enum.
// Unknown or empty values mean the request was never reviewed.
func NormalizeApprovalState(raw string) ApprovalState {
	switch ApprovalState(raw) {
	case ApprovalApproved:
		return ApprovalApproved
	case ApprovalRejected:
		return ApprovalRejected
	default:
		return ApprovalPending
	}
}

// UnmarshalJSON accepts the string enum, the legacy boolean, or null.
func (s *ApprovalState) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true":
		*s = ApprovalApproved
		return nil
	case "false", "null":
		*s = ApprovalPending
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = NormalizeApprovalState(str)
	return nil
}

// DebtRequest is a money-owed record under administrative review.
//
// Lifecycle: created upstream, only ever read and patched here. Paid is
// terminal; once true no further transition exists.

type DebtRequest struct {
	ID             string        `json:"id"`
	Amount         int64         `json:"amount"`
	AdjustedAmount int64         `json:"adjusted_amount"`
	Approval       ApprovalState `json:"approval"`
	Paid           bool          `json:"paid"`
	CreatedAt      time.Time     `json:"created_at"`
	Description    string        `json:"description"`
}

// Terminal reports whether the request admits no further transitions.
func (d DebtRequest) Terminal() bool {
	return d.Paid
}

// DebtUpdate is the patch submitted to POST /api/updateuserdebt.
//
// Paid is omitted unless the action settles the debt; approve/reject send
// adjustedAmount 0, matching what the upstream expects.
type DebtUpdate struct {
	UniqueUserID   string        `json:"unique_user_id"`
	DebtID         string        `json:"debtid"`
	Approved       ApprovalState `json:"approved"`
	AdjustedAmount int64         `json:"adjustedAmount"`
	Paid           bool          `json:"paid,omitempty"`
}
