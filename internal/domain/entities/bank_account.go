package entities

import "time"

// IFSCDetails describe the branch a bank account resolves to.
type IFSCDetails struct {
	BankName string `json:"bank_name"`
	Branch   string `json:"branch"`
	City     string `json:"city"`
	State    string `json:"state"`
	UPI      bool   `json:"upi"`
}

// BankAccount is the verified payout account linked to a user.
type BankAccount struct {
	Status      string       `json:"status"`
	FullName    string       `json:"full_name"`
	IDNumber    string       `json:"id_number"`
	IFSC        string       `json:"ifsc"`
	IFSCDetails *IFSCDetails `json:"ifsc_details,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
