package usecase

import (
	"context"
	"time"

	"repairlink/internal/domain/entity"
	"repairlink/internal/domain/repository"
	"repairlink/pkg/errors"
)

// forwardTransitions is the single-step progression a technician may drive
// once a job is matched. Cancellation is handled separately.
var forwardTransitions = map[string]string{
	entity.StatusMatched:          entity.StatusOnTransit,
	entity.StatusOnTransit:        entity.StatusGettingRepaired,
	entity.StatusGettingRepaired:  entity.StatusReadyForDelivery,
	entity.StatusReadyForDelivery: entity.StatusCompleted,
}

type RepairUseCase struct {
	repairRepo repository.RepairRepository
	userRepo   repository.UserRepository

	shippingFlatFee int64
	scheduleOffset  time.Duration
	commissionCut   float64
}

func NewRepairUseCase(
	repairRepo repository.RepairRepository,
	userRepo repository.UserRepository,
	shippingFlatFee int64,
	scheduleOffset time.Duration,
	commissionCut float64,
) *RepairUseCase {
	return &RepairUseCase{
		repairRepo:      repairRepo,
		userRepo:        userRepo,
		shippingFlatFee: shippingFlatFee,
		scheduleOffset:  scheduleOffset,
		commissionCut:   commissionCut,
	}
}

type CreateRepairInput struct {
	DeviceType     string
	Brand          string
	Model          string
	Issue          string
	CanPowerOn     bool
	Address        string
	ShippingMethod string
	EstimatedPrice int64
	EstimatedTime  string
}

// CreateJob opens a repair request. The caller becomes the owner and the job
// always starts unclaimed and unpaid, whatever the client sent.
func (uc *RepairUseCase) CreateJob(ctx context.Context, ownerID string, input CreateRepairInput) (*entity.Repair, error) {
	if input.Brand == "" || input.Model == "" || input.Issue == "" {
		return nil, errors.BadRequest("brand, model and issue are required", nil)
	}
	if input.EstimatedPrice <= 0 {
		return nil, errors.BadRequest("estimated price must be positive", nil)
	}

	shippingMethod := input.ShippingMethod
	if shippingMethod == "" {
		shippingMethod = entity.ShippingCarryIn
	}
	if shippingMethod != entity.ShippingCarryIn && shippingMethod != entity.ShippingDelivery {
		return nil, errors.BadRequest("invalid shipping method", nil)
	}

	repair := &entity.Repair{
		UserID:             ownerID,
		DeviceType:         input.DeviceType,
		Brand:              input.Brand,
		Model:              input.Model,
		Issue:              input.Issue,
		CanPowerOn:         input.CanPowerOn,
		Address:            input.Address,
		ShippingMethod:     shippingMethod,
		EstimatedPrice:     input.EstimatedPrice,
		EstimatedTime:      input.EstimatedTime,
		CommissionCut:      uc.commissionCut,
		Status:             entity.StatusFindingTechnician,
		PaymentStatus:      entity.PaymentPending,
		DisbursementStatus: entity.DisbursementHeld,
	}

	if err := uc.repairRepo.Create(ctx, repair); err != nil {
		return nil, err
	}

	return repair, nil
}

// AcceptJob claims an unassigned, paid job for a verified technician. The
// claim itself is a conditional update, so two racing technicians cannot both
// win: the loser sees a Conflict.
func (uc *RepairUseCase) AcceptJob(ctx context.Context, technicianID, jobID string) (*entity.Repair, error) {
	tech, err := uc.userRepo.GetByID(ctx, technicianID)
	if err != nil {
		return nil, errors.NotFound("Technician", err)
	}

	if tech.Role != entity.RoleTechnician {
		return nil, errors.Forbidden("Only technicians can accept jobs", nil)
	}
	if tech.TechnicianVerification.Status != entity.VerificationApproved {
		return nil, errors.Forbidden("Only verified technicians can accept jobs", nil)
	}

	job, err := uc.repairRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.Status != entity.StatusFindingTechnician {
		return nil, errors.Conflict("Job has already been claimed")
	}
	if job.PaymentStatus != entity.PaymentPaid {
		return nil, errors.Conflict("Job must be paid before it can be accepted")
	}

	var transportationCost int64
	if job.ShippingMethod == entity.ShippingDelivery {
		transportationCost = uc.shippingFlatFee
	}

	scheduledTime := time.Now().Add(uc.scheduleOffset)

	return uc.repairRepo.Claim(ctx, jobID, technicianID, transportationCost, scheduledTime)
}

// PayJob records payment by the owner. Supplying a mobile-money transaction
// message parks the job at Verification Pending for operator review; without
// one the payment is trusted and marked Paid immediately. Either way the
// funds stay Held until an out-of-band disbursement.
func (uc *RepairUseCase) PayJob(ctx context.Context, ownerID, jobID, txMessage string) (*entity.Repair, error) {
	job, err := uc.repairRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.UserID != ownerID {
		return nil, errors.Forbidden("Only the job owner can pay for this repair", nil)
	}
	if job.PaymentStatus == entity.PaymentPaid {
		return nil, errors.Conflict("Job is already paid")
	}

	if txMessage != "" {
		job.PaymentStatus = entity.PaymentVerificationPending
		job.PaymentTxMessage = txMessage
	} else {
		job.PaymentStatus = entity.PaymentPaid
	}
	job.DisbursementStatus = entity.DisbursementHeld

	if err := uc.repairRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// RateJob lets the owner rate the technician once the repair is complete. The
// technician's running mean is recalculated atomically with the job update.
func (uc *RepairUseCase) RateJob(ctx context.Context, ownerID, jobID string, rating int, review string) (*entity.Repair, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.BadRequest("rating must be between 1 and 5", nil)
	}

	job, err := uc.repairRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.UserID != ownerID {
		return nil, errors.Forbidden("Only the job owner can rate this repair", nil)
	}
	if job.Status != entity.StatusCompleted {
		return nil, errors.Conflict("Can only rate completed repairs")
	}
	if job.TechnicianRating != 0 {
		return nil, errors.Conflict("Repair has already been rated")
	}

	return uc.repairRepo.SubmitRating(ctx, jobID, rating, review)
}

// AdvanceStatus moves a claimed job one step forward along the repair flow.
func (uc *RepairUseCase) AdvanceStatus(ctx context.Context, technicianID, jobID, next string) (*entity.Repair, error) {
	job, err := uc.repairRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.TechnicianID != technicianID {
		return nil, errors.Forbidden("Only the assigned technician can update this job", nil)
	}

	if forwardTransitions[job.Status] != next {
		return nil, errors.Conflict("Invalid status transition from " + job.Status)
	}

	job.Status = next
	if err := uc.repairRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// CancelJob cancels a job that has not reached a terminal state. Owners can
// only back out before the bench work starts; admins can cancel any live job.
// Payment fields are untouched; refunds go through the admin payment reset.
func (uc *RepairUseCase) CancelJob(ctx context.Context, callerID, jobID string) (*entity.Repair, error) {
	job, err := uc.repairRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	caller, err := uc.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	isAdmin := caller.Role == entity.RoleAdmin
	if job.UserID != callerID && !isAdmin {
		return nil, errors.Forbidden("Only the job owner or an admin can cancel this repair", nil)
	}

	if job.IsTerminal() {
		return nil, errors.Conflict("Job is already " + job.Status)
	}
	if !isAdmin && (job.Status == entity.StatusGettingRepaired || job.Status == entity.StatusReadyForDelivery) {
		return nil, errors.Conflict("Repair is already in progress and can no longer be cancelled by the owner")
	}

	job.Status = entity.StatusCancelled
	if err := uc.repairRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// ForceVerifyPayment is the admin override that confirms a manually submitted
// payment. It bypasses owner guards by design.
func (uc *RepairUseCase) ForceVerifyPayment(ctx context.Context, jobID string) (*entity.Repair, error) {
	job, err := uc.repairRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	job.PaymentStatus = entity.PaymentPaid
	if err := uc.repairRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// ForceCancelPayment resets a payment to Pending and discards the submitted
// transaction message.
func (uc *RepairUseCase) ForceCancelPayment(ctx context.Context, jobID string) (*entity.Repair, error) {
	job, err := uc.repairRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	job.PaymentStatus = entity.PaymentPending
	job.PaymentTxMessage = ""
	if err := uc.repairRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// GetJob returns a job to its owner, its technician, or an admin.
func (uc *RepairUseCase) GetJob(ctx context.Context, callerID, jobID string) (*entity.Repair, error) {
	job, err := uc.repairRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.UserID == callerID || job.TechnicianID == callerID {
		return job, nil
	}

	caller, err := uc.userRepo.GetByID(ctx, callerID)
	if err != nil || caller.Role != entity.RoleAdmin {
		return nil, errors.Forbidden("You don't have permission to view this repair", nil)
	}

	return job, nil
}

// ListMyJobs returns the caller's repair requests, newest first.
func (uc *RepairUseCase) ListMyJobs(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Repair, int64, error) {
	return uc.repairRepo.ListByUserID(ctx, ownerID, limit, offset)
}

// ListAvailableJobs is the board technicians poll: unclaimed jobs whose
// payment has already been captured.
func (uc *RepairUseCase) ListAvailableJobs(ctx context.Context, limit, offset int) ([]*entity.Repair, int64, error) {
	filter := map[string]interface{}{
		"status":        entity.StatusFindingTechnician,
		"paymentStatus": entity.PaymentPaid,
	}
	return uc.repairRepo.List(ctx, filter, limit, offset)
}

// ListAllJobs is the admin view over every repair.
func (uc *RepairUseCase) ListAllJobs(ctx context.Context, status string, limit, offset int) ([]*entity.Repair, int64, error) {
	filter := map[string]interface{}{}
	if status != "" {
		filter["status"] = status
	}
	return uc.repairRepo.List(ctx, filter, limit, offset)
}
