package paysapi

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"paysadmin/internal/domain/entities"
)

// Wire structs mirror what the upstream actually sends, drifted field names
// and all. Conversion to domain entities happens here and nowhere else.

// flexString decodes a JSON string or number into a string. The upstream
// serves mobile numbers both ways.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexInt64 decodes a JSON number (possibly fractional) or numeric string
// into an int64, flooring fractional values.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*f = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return err
		}
		*f = flexInt64(math.Floor(v))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexInt64(math.Floor(v))
	return nil
}

type wireLocation struct {
	Country   string  `json:"country"`
	Region    string  `json:"region"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type wireUser struct {
	MongoID          string        `json:"_id"`
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	FullName         string        `json:"full_name"`
	Email            string        `json:"email"`
	Mobile           flexString    `json:"mobile"`
	UniqueID         string        `json:"unique_id"`
	UniqueUserID     string        `json:"unique_user_id"`
	IsVerified       bool          `json:"isVerified"`
	IsVerifiedMobile bool          `json:"isVerifiedmobile"`
	IsAdmin          bool          `json:"IsAdimin"` // upstream field name, typo included
	IPAddress        string        `json:"ipAddress"`
	Location         *wireLocation `json:"location"`
	CreatedAt        string        `json:"createdAt"`
	UpdatedAt        string        `json:"updatedAt"`
}

func (w wireUser) resolveName() string {
	if v := strings.TrimSpace(w.Name); v != "" {
		return v
	}
	return strings.TrimSpace(w.FullName)
}

func (w wireUser) resolveUniqueID() string {
	for _, v := range []string{w.UniqueID, w.UniqueUserID, w.ID, w.MongoID} {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func (w wireUser) toEntity() entities.User {
	u := entities.User{
		ID:               firstNonEmpty(w.MongoID, w.ID),
		UniqueID:         w.resolveUniqueID(),
		Name:             w.resolveName(),
		Email:            w.Email,
		Mobile:           string(w.Mobile),
		IsVerified:       w.IsVerified,
		IsVerifiedMobile: w.IsVerifiedMobile,
		IsAdmin:          w.IsAdmin,
		IPAddress:        w.IPAddress,
		CreatedAt:        parseTime(w.CreatedAt),
		UpdatedAt:        parseTime(w.UpdatedAt),
	}
	if w.Location != nil {
		u.Location = &entities.Location{
			Country:   w.Location.Country,
			Region:    w.Location.Region,
			City:      w.Location.City,
			Latitude:  w.Location.Latitude,
			Longitude: w.Location.Longitude,
		}
	}
	return u
}

type wireKYC struct {
	Status        string `json:"status"`
	KYCType       string `json:"kyc_type"`
	AadhaarLinked bool   `json:"aadhaar_linked"`
	Completed     bool   `json:"completed"`
	TransactionID string `json:"transaction_id"`
	AdharPath     string `json:"adharpath"`
	CreatedAt     string `json:"createdAt"`
}

func (w wireKYC) toEntity() entities.KYCRecord {
	return entities.KYCRecord{
		Status:        w.Status,
		KYCType:       w.KYCType,
		AadhaarLinked: w.AadhaarLinked,
		Completed:     w.Completed,
		TransactionID: w.TransactionID,
		AadhaarPath:   w.AdharPath,
		CreatedAt:     parseTime(w.CreatedAt),
	}
}

type wireIFSCDetails struct {
	BankName string `json:"bank_name"`
	Branch   string `json:"branch"`
	City     string `json:"city"`
	State    string `json:"state"`
	UPI      bool   `json:"upi"`
}

type wireBankAccount struct {
	Status      string           `json:"status"`
	FullName    string           `json:"full_name"`
	IDNumber    string           `json:"id_number"`
	IFSC        string           `json:"ifsc"`
	IFSCDetails *wireIFSCDetails `json:"ifsc_details"`
	CreatedAt   string           `json:"createdAt"`
}

func (w wireBankAccount) toEntity() entities.BankAccount {
	b := entities.BankAccount{
		Status:    w.Status,
		FullName:  w.FullName,
		IDNumber:  w.IDNumber,
		IFSC:      w.IFSC,
		CreatedAt: parseTime(w.CreatedAt),
	}
	if w.IFSCDetails != nil {
		b.IFSCDetails = &entities.IFSCDetails{
			BankName: w.IFSCDetails.BankName,
			Branch:   w.IFSCDetails.Branch,
			City:     w.IFSCDetails.City,
			State:    w.IFSCDetails.State,
			UPI:      w.IFSCDetails.UPI,
		}
	}
	return b
}

type wireDebt struct {
	MongoID        string                 `json:"_id"`
	ID             string                 `json:"id"`
	Amount         flexInt64              `json:"amount"`
	AdjustedAmount flexInt64              `json:"adjustedAmount"`
	Approved       entities.ApprovalState `json:"approved"`
	Paid           bool                   `json:"paid"`
	CreatedAt      string                 `json:"createdAt"`
	Description    string                 `json:"description"`
}

func (w wireDebt) toEntity() entities.DebtRequest {
	approval := w.Approved
	if approval == "" {
		approval = entities.ApprovalPending
	}
	return entities.DebtRequest{
		ID:             firstNonEmpty(w.MongoID, w.ID),
		Amount:         int64(w.Amount),
		AdjustedAmount: int64(w.AdjustedAmount),
		Approval:       approval,
		Paid:           w.Paid,
		CreatedAt:      parseTime(w.CreatedAt),
		Description:    w.Description,
	}
}

type wireProfile struct {
	User        *wireUser        `json:"Userresult"`
	KYC         *wireKYC         `json:"kycdataresult"`
	BankAccount *wireBankAccount `json:"BankAccountresult"`
	Debts       json.RawMessage  `json:"Debtresult"`
}

func (w wireProfile) toEntity() entities.UserProfile {
	p := entities.UserProfile{Debts: []entities.DebtRequest{}}
	if w.User != nil {
		u := w.User.toEntity()
		p.User = &u
	}
	if w.KYC != nil {
		k := w.KYC.toEntity()
		p.KYC = &k
	}
	if w.BankAccount != nil {
		b := w.BankAccount.toEntity()
		p.BankAccount = &b
	}
	for _, d := range normalizeDebts(w.Debts) {
		p.Debts = append(p.Debts, d.toEntity())
	}
	return p
}

// normalizeDebts accepts the upstream debt field as an array, a single
// object, or absent, and always yields a slice.
func normalizeDebts(raw json.RawMessage) []wireDebt {
	if len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return nil
	}
	var list []wireDebt
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var one wireDebt
	if err := json.Unmarshal(raw, &one); err == nil {
		return []wireDebt{one}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
