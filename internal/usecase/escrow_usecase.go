package usecase

import (
	"context"

	"repairlink/internal/domain/entity"
	"repairlink/internal/domain/repository"
)

// EscrowSummary reports the money the platform is currently sitting on:
// captured but undisbursed payments, and payments awaiting manual
// verification. It is derived from job records on every call.
type EscrowSummary struct {
	TotalHeld                 int64 `json:"total_held"`
	PendingVerificationAmount int64 `json:"pending_verification_amount"`
	HeldCount                 int   `json:"held_count"`
	PendingCount              int   `json:"pending_count"`
}

type EscrowUseCase struct {
	repairRepo repository.RepairRepository
}

func NewEscrowUseCase(repairRepo repository.RepairRepository) *EscrowUseCase {
	return &EscrowUseCase{
		repairRepo: repairRepo,
	}
}

func (uc *EscrowUseCase) Snapshot(ctx context.Context) (*EscrowSummary, error) {
	held, _, err := uc.repairRepo.List(ctx, map[string]interface{}{
		"paymentStatus":      entity.PaymentPaid,
		"disbursementStatus": entity.DisbursementHeld,
	}, 0, 0)
	if err != nil {
		return nil, err
	}

	pending, _, err := uc.repairRepo.List(ctx, map[string]interface{}{
		"paymentStatus": entity.PaymentVerificationPending,
	}, 0, 0)
	if err != nil {
		return nil, err
	}

	summary := &EscrowSummary{
		HeldCount:    len(held),
		PendingCount: len(pending),
	}
	for _, job := range held {
		summary.TotalHeld += job.EstimatedPrice
	}
	for _, job := range pending {
		summary.PendingVerificationAmount += job.EstimatedPrice
	}

	return summary, nil
}
