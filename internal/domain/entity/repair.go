package entity

import (
	"time"
)

const (
	StatusFindingTechnician = "Finding Technician"
	StatusMatched           = "Matched"
	StatusOnTransit         = "On Transit"
	StatusGettingRepaired   = "Getting Repaired"
	StatusReadyForDelivery  = "Ready for Delivery"
	StatusCompleted         = "Completed"
	StatusCancelled         = "Cancelled"
)

const (
	PaymentPending             = "Pending"
	PaymentVerificationPending = "Verification Pending"
	PaymentPaid                = "Paid"
)

const (
	DisbursementHeld      = "Held"
	DisbursementDisbursed = "Disbursed"
)

const (
	ShippingCarryIn  = "Carry-in"
	ShippingDelivery = "Shipping"
)

type Repair struct {
	ID           string `json:"id" firestore:"id"`
	UserID       string `json:"user_id" firestore:"userId"`
	TechnicianID string `json:"technician_id,omitempty" firestore:"technicianId,omitempty"`

	DeviceType string `json:"device_type,omitempty" firestore:"deviceType,omitempty"`
	Brand      string `json:"brand" firestore:"brand"`
	Model      string `json:"model" firestore:"model"`
	Issue      string `json:"issue" firestore:"issue"`
	CanPowerOn bool   `json:"can_power_on" firestore:"canPowerOn"`

	Address        string `json:"address,omitempty" firestore:"address,omitempty"`
	ShippingMethod string `json:"shipping_method" firestore:"shippingMethod"`

	EstimatedPrice     int64   `json:"estimated_price" firestore:"estimatedPrice"`
	EstimatedTime      string  `json:"estimated_time,omitempty" firestore:"estimatedTime,omitempty"`
	TransportationCost int64   `json:"transportation_cost" firestore:"transportationCost"`
	CommissionCut      float64 `json:"commission_cut" firestore:"commissionCut"`

	Status             string `json:"status" firestore:"status"` // Finding Technician, Matched, On Transit, Getting Repaired, Ready for Delivery, Completed, Cancelled
	PaymentStatus      string `json:"payment_status" firestore:"paymentStatus"`
	PaymentTxMessage   string `json:"payment_tx_message,omitempty" firestore:"paymentTxMessage,omitempty"`
	DisbursementStatus string `json:"disbursement_status" firestore:"disbursementStatus"`

	ScheduledTime *time.Time `json:"scheduled_time,omitempty" firestore:"scheduledTime,omitempty"`

	TechnicianRating int    `json:"technician_rating,omitempty" firestore:"technicianRating,omitempty"`
	CustomerReview   string `json:"customer_review,omitempty" firestore:"customerReview,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IsTerminal reports whether the job can no longer change state.
func (r *Repair) IsTerminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled
}
