package response

import (
	"time"

	"paysadmin/internal/domain/entities"
)

type DebtResponse struct {
	ID             string    `json:"id"`
	Amount         int64     `json:"amount"`
	AdjustedAmount int64     `json:"adjusted_amount"`
	Status         string    `json:"status"`
	Paid           bool      `json:"paid"`
	CreatedAt      time.Time `json:"created_at"`
	Description    string    `json:"description"`
	// Actionable mirrors the view rule: settled rows offer no actions.
	Actionable bool `json:"actionable"`
}

func FromDebt(d entities.DebtRequest) DebtResponse {
	return DebtResponse{
		ID:             d.ID,
		Amount:         d.Amount,
		AdjustedAmount: d.AdjustedAmount,
		Status:         string(d.Approval),
		Paid:           d.Paid,
		CreatedAt:      d.CreatedAt,
		Description:    d.Description,
		Actionable:     !d.Terminal(),
	}
}

type KYCResponse struct {
	Status        string    `json:"status"`
	KYCType       string    `json:"kyc_type"`
	AadhaarLinked bool      `json:"aadhaar_linked"`
	Completed     bool      `json:"completed"`
	TransactionID string    `json:"transaction_id"`
	HasAadhaar    bool      `json:"has_aadhaar"`
	AadhaarPath   string    `json:"aadhaar_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type IFSCDetailsResponse struct {
	BankName string `json:"bank_name"`
	Branch   string `json:"branch"`
	City     string `json:"city"`
	State    string `json:"state"`
	UPI      bool   `json:"upi"`
}

type BankAccountResponse struct {
	Status      string               `json:"status"`
	FullName    string               `json:"full_name"`
	IDNumber    string               `json:"id_number"`
	IFSC        string               `json:"ifsc"`
	IFSCDetails *IFSCDetailsResponse `json:"ifsc_details,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type ProfileResponse struct {
	User        *UserResponse        `json:"user,omitempty"`
	KYC         *KYCResponse         `json:"kyc,omitempty"`
	BankAccount *BankAccountResponse `json:"bank_account,omitempty"`
	Debts       []DebtResponse       `json:"debts"`
}

func FromProfile(p entities.UserProfile) ProfileResponse {
	resp := ProfileResponse{Debts: make([]DebtResponse, 0, len(p.Debts))}
	if p.User != nil {
		u := FromUser(*p.User)
		resp.User = &u
	}
	if p.KYC != nil {
		resp.KYC = &KYCResponse{
			Status:        p.KYC.Status,
			KYCType:       p.KYC.KYCType,
			AadhaarLinked: p.KYC.AadhaarLinked,
			Completed:     p.KYC.Completed,
			TransactionID: p.KYC.TransactionID,
			HasAadhaar:    p.KYC.AadhaarPath != "",
			AadhaarPath:   p.KYC.AadhaarPath,
			CreatedAt:     p.KYC.CreatedAt,
		}
	}
	if p.BankAccount != nil {
		b := &BankAccountResponse{
			Status:    p.BankAccount.Status,
			FullName:  p.BankAccount.FullName,
			IDNumber:  p.BankAccount.IDNumber,
			IFSC:      p.BankAccount.IFSC,
			CreatedAt: p.BankAccount.CreatedAt,
		}
		if p.BankAccount.IFSCDetails != nil {
			b.IFSCDetails = &IFSCDetailsResponse{
				BankName: p.BankAccount.IFSCDetails.BankName,
				Branch:   p.BankAccount.IFSCDetails.Branch,
				City:     p.BankAccount.IFSCDetails.City,
				State:    p.BankAccount.IFSCDetails.State,
				UPI:      p.BankAccount.IFSCDetails.UPI,
			}
		}
		resp.BankAccount = b
	}
	for _, d := range p.Debts {
		resp.Debts = append(resp.Debts, FromDebt(d))
	}
	return resp
}
