package repository

import (
	"context"
	"time"

	"repairlink/internal/domain/entity"
)

type RepairRepository interface {
	Create(ctx context.Context, repair *entity.Repair) error
	GetByID(ctx context.Context, id string) (*entity.Repair, error)
	Update(ctx context.Context, repair *entity.Repair) error

	// List returns repairs matching every filter field, newest first.
	// A zero limit means no pagination.
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Repair, int64, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Repair, int64, error)

	// Claim assigns a technician to a job with a conditional update: it
	// re-reads the job inside a transaction and only succeeds while the job
	// is still unclaimed and paid. Losing a race yields a Conflict error.
	Claim(ctx context.Context, jobID, technicianID string, transportationCost int64, scheduledTime time.Time) (*entity.Repair, error)

	// SubmitRating stores the rating on the job and folds it into the
	// technician's running mean in a single transaction.
	SubmitRating(ctx context.Context, jobID string, rating int, review string) (*entity.Repair, error)
}
