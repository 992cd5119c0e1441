package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repairlink/internal/domain/entity"
)

func TestEscrowSnapshot(t *testing.T) {
	repairs := newMemRepairRepo()
	uc := NewEscrowUseCase(repairs)

	seed := []*entity.Repair{
		{EstimatedPrice: 5850, PaymentStatus: entity.PaymentPaid, DisbursementStatus: entity.DisbursementHeld},
		{EstimatedPrice: 4300, PaymentStatus: entity.PaymentPaid, DisbursementStatus: entity.DisbursementHeld},
		{EstimatedPrice: 27898, PaymentStatus: entity.PaymentVerificationPending, DisbursementStatus: entity.DisbursementHeld},
		// Disbursed and unpaid jobs are out of scope either way.
		{EstimatedPrice: 9999, PaymentStatus: entity.PaymentPaid, DisbursementStatus: entity.DisbursementDisbursed},
		{EstimatedPrice: 1234, PaymentStatus: entity.PaymentPending, DisbursementStatus: entity.DisbursementHeld},
	}
	for _, job := range seed {
		require.NoError(t, repairs.Create(context.Background(), job))
	}

	summary, err := uc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10150), summary.TotalHeld)
	assert.Equal(t, 2, summary.HeldCount)
	assert.Equal(t, int64(27898), summary.PendingVerificationAmount)
	assert.Equal(t, 1, summary.PendingCount)
}

func TestEscrowSnapshotEmpty(t *testing.T) {
	uc := NewEscrowUseCase(newMemRepairRepo())

	summary, err := uc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalHeld)
	assert.Zero(t, summary.HeldCount)
	assert.Zero(t, summary.PendingVerificationAmount)
	assert.Zero(t, summary.PendingCount)
}
