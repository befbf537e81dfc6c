package entities

import "time"

// Location is the coarse geo record the upstream attaches to a user.
type Location struct {
	Country   string  `json:"country,omitempty"`
	Region    string  `json:"region,omitempty"`
	City      string  `json:"city,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// User is a platform account as seen by the admin directory.
//
// The upstream list endpoint spells identifiers several ways (unique_id,
// unique_user_id, id, _id) and names several ways (name, full_name); the
// gateway resolves those variants so this struct carries one of each.

type User struct {
	ID               string    `json:"id"`
	UniqueID         string    `json:"unique_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Mobile           string    `json:"mobile"`
	IsVerified       bool      `json:"is_verified"`
	IsVerifiedMobile bool      `json:"is_verified_mobile"`
	IsAdmin          bool      `json:"is_admin"`
	IPAddress        string    `json:"ip_address,omitempty"`
	Location         *Location `json:"location,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DashboardStats are the directory aggregates shown on the admin landing page.
type DashboardStats struct {
	TotalUsers          int `json:"total_users"`
	VerifiedUsers       int `json:"verified_users"`
	MobileVerifiedUsers int `json:"mobile_verified_users"`
	AdminUsers          int `json:"admin_users"`
	RecentUsers         int `json:"recent_users"`
}
