package models

import "time"

// Roles a provider record can carry. Patients and transporters live in
// the same directory as doctors and pharmacists; the role is the list.
const (
	RoleDoctor      = "doctor"
	RolePharmacist  = "pharmacist"
	RolePatient     = "patient"
	RoleTransporter = "transporter"
)

func ValidRole(role string) bool {
	switch role {
	case RoleDoctor, RolePharmacist, RolePatient, RoleTransporter:
		return true
	}
	return false
}

type Provider struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Role string `gorm:"size:20;not null;uniqueIndex:idx_providers_role_username,priority:1" json:"role"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Stored lowercased; uniqueness within a role is case-insensitive.
	Username     string `gorm:"size:100;not null;uniqueIndex:idx_providers_role_username,priority:2" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Location  string `gorm:"size:255" json:"location"`
	Cellphone string `gorm:"size:20" json:"cellphone"`
	Email     string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
