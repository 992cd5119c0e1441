package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repairlink/internal/domain/entity"
	"repairlink/pkg/errors"
)

func seedAvailableTechnician(t *testing.T, users *memUserRepo, id, tier string, rating float64) {
	t.Helper()
	require.NoError(t, users.Create(context.Background(), &entity.User{
		ID:   id,
		Role: entity.RoleTechnician,
		TechnicianDetails: entity.TechnicianDetails{
			IsAvailable: true,
			Tier:        tier,
			Rating:      rating,
		},
		TechnicianVerification: entity.TechnicianVerification{
			Status: entity.VerificationApproved,
		},
	}))
}

func TestRankAvailableTierBeforeRating(t *testing.T) {
	users := newMemUserRepo()
	uc := NewTechnicianUseCase(users)

	seedAvailableTechnician(t, users, "free-high", entity.TierFree, 4.9)
	seedAvailableTechnician(t, users, "premium-low", entity.TierPremium, 3.0)
	seedAvailableTechnician(t, users, "premium-high", entity.TierPremium, 4.5)

	ranked, err := uc.RankAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "premium-high", ranked[0].ID)
	assert.Equal(t, "premium-low", ranked[1].ID)
	assert.Equal(t, "free-high", ranked[2].ID)
}

func TestRankAvailableStableOnTies(t *testing.T) {
	users := newMemUserRepo()
	uc := NewTechnicianUseCase(users)

	seedAvailableTechnician(t, users, "first", entity.TierFree, 4.0)
	seedAvailableTechnician(t, users, "second", entity.TierFree, 4.0)

	ranked, err := uc.RankAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].ID)
	assert.Equal(t, "second", ranked[1].ID)
}

func validApplication() TechnicianApplication {
	return TechnicianApplication{
		IDType:       "national-id",
		IDNumber:     "12345678",
		LegalName:    "Jane Wanjiku",
		DateOfBirth:  time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		ProfilePhoto: "photos/jane.jpg",
		ShopName:     "Wanjiku Phone Clinic",
		ShopAddress:  "Moi Avenue, Nairobi",
	}
}

func TestApply(t *testing.T) {
	users := newMemUserRepo()
	uc := NewTechnicianUseCase(users)
	seedUser(t, users, "user-1", entity.RoleUser)

	incomplete := validApplication()
	incomplete.ShopName = ""
	_, err := uc.Apply(context.Background(), "user-1", incomplete)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	verification, err := uc.Apply(context.Background(), "user-1", validApplication())
	require.NoError(t, err)
	assert.Equal(t, entity.VerificationPending, verification.Status)
	assert.NotNil(t, verification.SubmittedAt)

	_, err = uc.Apply(context.Background(), "user-1", validApplication())
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestApproveAndReject(t *testing.T) {
	users := newMemUserRepo()
	uc := NewTechnicianUseCase(users)
	seedUser(t, users, "applicant", entity.RoleUser)
	seedUser(t, users, "bystander", entity.RoleUser)

	_, err := uc.Apply(context.Background(), "applicant", validApplication())
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), "admin-1", "bystander")
	assert.True(t, errors.Is(err, "CONFLICT"))

	approved, err := uc.Approve(context.Background(), "admin-1", "applicant")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTechnician, approved.Role)
	assert.Equal(t, entity.VerificationApproved, approved.TechnicianVerification.Status)
	assert.Equal(t, entity.TierFree, approved.TechnicianDetails.Tier)
	assert.Equal(t, "admin-1", approved.TechnicianVerification.ReviewedBy)

	// A rejected applicant may re-apply.
	seedUser(t, users, "applicant-2", entity.RoleUser)
	_, err = uc.Apply(context.Background(), "applicant-2", validApplication())
	require.NoError(t, err)

	_, err = uc.Reject(context.Background(), "admin-1", "applicant-2", "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	rejected, err := uc.Reject(context.Background(), "admin-1", "applicant-2", "Documents unreadable")
	require.NoError(t, err)
	assert.Equal(t, entity.VerificationRejected, rejected.Status)

	_, err = uc.Apply(context.Background(), "applicant-2", validApplication())
	require.NoError(t, err)
}

func TestSetAvailability(t *testing.T) {
	users := newMemUserRepo()
	uc := NewTechnicianUseCase(users)
	seedUser(t, users, "user-1", entity.RoleUser)
	seedAvailableTechnician(t, users, "tech-1", entity.TierFree, 4.0)

	_, err := uc.SetAvailability(context.Background(), "user-1", true)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := uc.SetAvailability(context.Background(), "tech-1", false)
	require.NoError(t, err)
	assert.False(t, updated.TechnicianDetails.IsAvailable)
	assert.False(t, updated.TechnicianDetails.LastActive.IsZero())
}

func TestUpdateDetails(t *testing.T) {
	users := newMemUserRepo()
	uc := NewTechnicianUseCase(users)
	seedUser(t, users, "user-1", entity.RoleUser)
	seedAvailableTechnician(t, users, "tech-1", entity.TierFree, 4.0)

	_, err := uc.UpdateDetails(context.Background(), "user-1", UpdateTechnicianInput{})
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	badTier := "Platinum"
	_, err = uc.UpdateDetails(context.Background(), "tech-1", UpdateTechnicianInput{Tier: &badTier})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	premium := entity.TierPremium
	rating := 4.8
	updated, err := uc.UpdateDetails(context.Background(), "tech-1", UpdateTechnicianInput{
		Tier:   &premium,
		Rating: &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TierPremium, updated.TechnicianDetails.Tier)
	assert.Equal(t, 4.8, updated.TechnicianDetails.Rating)
}
