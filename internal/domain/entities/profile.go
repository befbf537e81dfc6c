package entities

// UserProfile is the aggregate the upstream returns for a single user:
// zero-or-one each of user, KYC and bank-account records plus zero-or-more
// debt requests. The upstream debt field may be a single object or an array;
// the gateway always delivers it here as a slice.
type UserProfile struct {
	User        *User        `json:"user,omitempty"`
	KYC         *KYCRecord   `json:"kyc,omitempty"`
	BankAccount *BankAccount `json:"bank_account,omitempty"`
	Debts       []DebtRequest `json:"debts"`
}
