package usecase

import (
	"context"
	"sort"
	"time"

	"repairlink/internal/domain/entity"
	"repairlink/internal/domain/repository"
	"repairlink/pkg/errors"
)

type TechnicianUseCase struct {
	userRepo repository.UserRepository
}

func NewTechnicianUseCase(userRepo repository.UserRepository) *TechnicianUseCase {
	return &TechnicianUseCase{
		userRepo: userRepo,
	}
}

func tierRank(tier string) int {
	if tier == entity.TierPremium {
		return 1
	}
	return 0
}

// RankAvailable returns available technicians ordered Premium before Free,
// then by rating descending. The sort is stable, so ties keep storage order.
func (uc *TechnicianUseCase) RankAvailable(ctx context.Context) ([]*entity.User, error) {
	technicians, err := uc.userRepo.ListAvailableTechnicians(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(technicians, func(i, j int) bool {
		ti, tj := technicians[i].TechnicianDetails, technicians[j].TechnicianDetails
		if tierRank(ti.Tier) != tierRank(tj.Tier) {
			return tierRank(ti.Tier) > tierRank(tj.Tier)
		}
		return ti.Rating > tj.Rating
	})

	return technicians, nil
}

type TechnicianApplication struct {
	IDType          string
	IDNumber        string
	LegalName       string
	DateOfBirth     time.Time
	ProfilePhoto    string
	ShopName        string
	ShopAddress     string
	RegistrationDoc string
	TaxDoc          string
	AdditionalDocs  []string
}

// Apply submits a verification application. Rejected applicants may re-apply;
// pending and approved ones may not.
func (uc *TechnicianUseCase) Apply(ctx context.Context, userID string, input TechnicianApplication) (*entity.TechnicianVerification, error) {
	if input.IDType == "" || input.IDNumber == "" || input.LegalName == "" ||
		input.ProfilePhoto == "" || input.ShopName == "" || input.ShopAddress == "" {
		return nil, errors.BadRequest("Please provide all required fields", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	switch user.TechnicianVerification.Status {
	case entity.VerificationPending:
		return nil, errors.Conflict("Your application is already pending review")
	case entity.VerificationApproved:
		return nil, errors.Conflict("You are already a verified technician")
	}

	now := time.Now()
	dob := input.DateOfBirth
	user.TechnicianVerification = entity.TechnicianVerification{
		Status:          entity.VerificationPending,
		IDType:          input.IDType,
		IDNumber:        input.IDNumber,
		LegalName:       input.LegalName,
		DateOfBirth:     &dob,
		ProfilePhoto:    input.ProfilePhoto,
		ShopName:        input.ShopName,
		ShopAddress:     input.ShopAddress,
		RegistrationDoc: input.RegistrationDoc,
		TaxDoc:          input.TaxDoc,
		AdditionalDocs:  input.AdditionalDocs,
		SubmittedAt:     &now,
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &user.TechnicianVerification, nil
}

func (uc *TechnicianUseCase) GetApplication(ctx context.Context, userID string) (*entity.TechnicianVerification, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &user.TechnicianVerification, nil
}

// SetAvailability toggles whether the technician shows up on the job board.
func (uc *TechnicianUseCase) SetAvailability(ctx context.Context, technicianID string, available bool) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, technicianID)
	if err != nil {
		return nil, errors.NotFound("Technician", err)
	}

	if !user.IsVerifiedTechnician() {
		return nil, errors.Forbidden("Only verified technicians can change availability", nil)
	}

	user.TechnicianDetails.IsAvailable = available
	user.TechnicianDetails.LastActive = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Admin operations.

func (uc *TechnicianUseCase) ListPendingApplications(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.ListByVerificationStatus(ctx, entity.VerificationPending)
}

func (uc *TechnicianUseCase) ListVerified(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.ListVerifiedTechnicians(ctx)
}

// Approve upgrades a pending applicant to a verified technician.
func (uc *TechnicianUseCase) Approve(ctx context.Context, adminID, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if user.TechnicianVerification.Status != entity.VerificationPending {
		return nil, errors.Conflict("Application is not pending")
	}

	now := time.Now()
	user.Role = entity.RoleTechnician
	user.TechnicianVerification.Status = entity.VerificationApproved
	user.TechnicianVerification.ReviewedAt = &now
	user.TechnicianVerification.ReviewedBy = adminID
	if user.TechnicianDetails.Tier == "" {
		user.TechnicianDetails.Tier = entity.TierFree
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *TechnicianUseCase) Reject(ctx context.Context, adminID, userID, reason string) (*entity.TechnicianVerification, error) {
	if reason == "" {
		return nil, errors.BadRequest("Please provide a rejection reason", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	now := time.Now()
	user.TechnicianVerification.Status = entity.VerificationRejected
	user.TechnicianVerification.ReviewedAt = &now
	user.TechnicianVerification.ReviewedBy = adminID
	user.TechnicianVerification.RejectionReason = reason

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &user.TechnicianVerification, nil
}

type UpdateTechnicianInput struct {
	Rating      *float64
	Tier        *string
	IsAvailable *bool
}

// UpdateDetails is the admin override for a technician's profile fields.
func (uc *TechnicianUseCase) UpdateDetails(ctx context.Context, userID string, input UpdateTechnicianInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Technician", err)
	}

	if user.Role != entity.RoleTechnician {
		return nil, errors.NotFound("Technician", nil)
	}

	if input.Rating != nil {
		user.TechnicianDetails.Rating = *input.Rating
	}
	if input.Tier != nil {
		if *input.Tier != entity.TierFree && *input.Tier != entity.TierPremium {
			return nil, errors.BadRequest("invalid tier", nil)
		}
		user.TechnicianDetails.Tier = *input.Tier
	}
	if input.IsAvailable != nil {
		user.TechnicianDetails.IsAvailable = *input.IsAvailable
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
