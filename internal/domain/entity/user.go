package entity

import (
	"time"
)

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
)

const (
	TierFree    = "Free"
	TierPremium = "Premium"
)

const (
	VerificationNotApplied = "Not Applied"
	VerificationPending    = "Pending"
	VerificationApproved   = "Approved"
	VerificationRejected   = "Rejected"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Name     string `json:"name" firestore:"name"`
	Username string `json:"username,omitempty" firestore:"username,omitempty"`
	Email    string `json:"email" firestore:"email"`
	Role     string `json:"role" firestore:"role"`

	TechnicianDetails      TechnicianDetails      `json:"technician_details" firestore:"technicianDetails"`
	TechnicianVerification TechnicianVerification `json:"technician_verification" firestore:"technicianVerification"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type TechnicianDetails struct {
	Rating       float64   `json:"rating" firestore:"rating"`
	NumReviews   int       `json:"num_reviews" firestore:"numReviews"`
	IsAvailable  bool      `json:"is_available" firestore:"isAvailable"`
	Tier         string    `json:"tier" firestore:"tier"`
	TotalRepairs int       `json:"total_repairs" firestore:"totalRepairs"`
	LastActive   time.Time `json:"last_active,omitempty" firestore:"lastActive,omitempty"`
	Experience   int       `json:"experience,omitempty" firestore:"experience,omitempty"`
	Specialties  []string  `json:"specialties,omitempty" firestore:"specialties,omitempty"`
}

type TechnicianVerification struct {
	Status          string     `json:"status" firestore:"status"`
	IDType          string     `json:"id_type,omitempty" firestore:"idType,omitempty"`
	IDNumber        string     `json:"id_number,omitempty" firestore:"idNumber,omitempty"`
	LegalName       string     `json:"legal_name,omitempty" firestore:"legalName,omitempty"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty" firestore:"dateOfBirth,omitempty"`
	ProfilePhoto    string     `json:"profile_photo,omitempty" firestore:"profilePhoto,omitempty"`
	ShopName        string     `json:"shop_name,omitempty" firestore:"shopName,omitempty"`
	ShopAddress     string     `json:"shop_address,omitempty" firestore:"shopAddress,omitempty"`
	RegistrationDoc string     `json:"registration_document,omitempty" firestore:"registrationDocument,omitempty"`
	TaxDoc          string     `json:"tax_document,omitempty" firestore:"taxDocument,omitempty"`
	AdditionalDocs  []string   `json:"additional_documents,omitempty" firestore:"additionalDocuments,omitempty"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty" firestore:"submittedAt,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty" firestore:"reviewedAt,omitempty"`
	ReviewedBy      string     `json:"reviewed_by,omitempty" firestore:"reviewedBy,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty" firestore:"rejectionReason,omitempty"`
}

// IsVerifiedTechnician reports whether the user may service repair jobs.
func (u *User) IsVerifiedTechnician() bool {
	return u.Role == RoleTechnician && u.TechnicianVerification.Status == VerificationApproved
}
