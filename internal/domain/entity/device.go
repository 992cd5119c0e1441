package entity

import (
	"time"
)

const (
	DeviceStatusLost      = "lost"
	DeviceStatusRecovered = "recovered"
)

// Device is a lost-device report in the public registry, keyed by its
// IMEI/serial number.
type Device struct {
	ID           string    `json:"id" firestore:"id"`
	UserID       string    `json:"user_id" firestore:"userId"`
	Brand        string    `json:"brand" firestore:"brand"`
	Model        string    `json:"model" firestore:"model"`
	SerialNumber string    `json:"serial_number" firestore:"serialNumber"`
	ContactEmail string    `json:"contact_email" firestore:"contactEmail"`
	Location     string    `json:"location,omitempty" firestore:"location,omitempty"`
	Description  string    `json:"description,omitempty" firestore:"description,omitempty"`
	ImageBase64  string    `json:"image_base64,omitempty" firestore:"imageBase64,omitempty"`
	Status       string    `json:"status" firestore:"status"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}

type DeviceStats struct {
	TotalReported int64 `json:"total_reported"`
	Recovered     int64 `json:"recovered"`
	Pending       int64 `json:"pending"`
}
