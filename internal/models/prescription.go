package models

import "time"

const (
	PrescriptionReceived = "received"
	PrescriptionReady    = "ready"
)

type Prescription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PharmacistID uint   `gorm:"index" json:"pharmacist_id"`
	PatientName  string `gorm:"size:100;not null" json:"patient_name"`

	SlotStart time.Time `json:"slot_start"`

	Filename string `gorm:"size:255;not null" json:"filename"`
	MimeType string `gorm:"size:100" json:"mime_type"`

	Status     string     `gorm:"size:20;default:'received'" json:"status"`
	PickupTime *time.Time `json:"pickup_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
