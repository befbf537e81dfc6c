package entities

import "time"

// KYCRecord is the identity-verification state of a user.
type KYCRecord struct {
	Status        string    `json:"status"`
	KYCType       string    `json:"kyc_type"`
	AadhaarLinked bool      `json:"aadhaar_linked"`
	Completed     bool      `json:"completed"`
	TransactionID string    `json:"transaction_id"`
	AadhaarPath   string    `json:"aadhaar_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
