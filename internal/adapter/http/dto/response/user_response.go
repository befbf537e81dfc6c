package response

import (
	"time"

	"paysadmin/internal/domain/entities"
)

type LocationResponse struct {
	Country   string  `json:"country,omitempty"`
	Region    string  `json:"region,omitempty"`
	City      string  `json:"city,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type UserResponse struct {
	ID               string            `json:"id"`
	UniqueID         string            `json:"unique_id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Mobile           string            `json:"mobile"`
	IsVerified       bool              `json:"is_verified"`
	IsVerifiedMobile bool              `json:"is_verified_mobile"`
	IsAdmin          bool              `json:"is_admin"`
	IPAddress        string            `json:"ip_address,omitempty"`
	Location         *LocationResponse `json:"location,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	resp := UserResponse{
		ID:               u.ID,
		UniqueID:         u.UniqueID,
		Name:             u.Name,
		Email:            u.Email,
		Mobile:           u.Mobile,
		IsVerified:       u.IsVerified,
		IsVerifiedMobile: u.IsVerifiedMobile,
		IsAdmin:          u.IsAdmin,
		IPAddress:        u.IPAddress,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
	if u.Location != nil {
		resp.Location = &LocationResponse{
			Country:   u.Location.Country,
			Region:    u.Location.Region,
			City:      u.Location.City,
			Latitude:  u.Location.Latitude,
			Longitude: u.Location.Longitude,
		}
	}
	return resp
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type StatsResponse struct {
	TotalUsers          int `json:"total_users"`
	VerifiedUsers       int `json:"verified_users"`
	MobileVerifiedUsers int `json:"mobile_verified_users"`
	AdminUsers          int `json:"admin_users"`
	RecentUsers         int `json:"recent_users"`
}

func FromStats(s entities.DashboardStats) StatsResponse {
	return StatsResponse{
		TotalUsers:          s.TotalUsers,
		VerifiedUsers:       s.VerifiedUsers,
		MobileVerifiedUsers: s.MobileVerifiedUsers,
		AdminUsers:          s.AdminUsers,
		RecentUsers:         s.RecentUsers,
	}
}
