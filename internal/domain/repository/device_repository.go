package repository

import (
	"context"

	"repairlink/internal/domain/entity"
)

type DeviceRepository interface {
	// Create inserts a report; a duplicate serial number yields a Conflict.
	Create(ctx context.Context, device *entity.Device) error
	GetByID(ctx context.Context, id string) (*entity.Device, error)
	GetBySerial(ctx context.Context, serial string) (*entity.Device, error)
	Update(ctx context.Context, device *entity.Device) error
	Delete(ctx context.Context, id string) error

	ListByUserID(ctx context.Context, userID string) ([]*entity.Device, error)
	ListAll(ctx context.Context) ([]*entity.Device, error)
	CountByUserID(ctx context.Context, userID, status string) (int64, error)
}
