package repository

import (
	"context"

	"repairlink/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	// ListAvailableTechnicians returns technicians flagged available, in
	// stable storage order; ranking is done by the caller.
	ListAvailableTechnicians(ctx context.Context) ([]*entity.User, error)
	ListByVerificationStatus(ctx context.Context, status string) ([]*entity.User, error)
	ListVerifiedTechnicians(ctx context.Context) ([]*entity.User, error)
}
