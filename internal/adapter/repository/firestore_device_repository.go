package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"repairlink/internal/domain/entity"
	"repairlink/internal/domain/repository"
	"repairlink/pkg/errors"
)

type firestoreDeviceRepository struct {
	client *firestore.Client
}

func NewFirestoreDeviceRepository(client *firestore.Client) repository.DeviceRepository {
	return &firestoreDeviceRepository{
		client: client,
	}
}

// Create inserts a report after checking the serial is not already
// registered. The check and the write run in one transaction so two
// concurrent reports for the same serial cannot both land.
func (r *firestoreDeviceRepository) Create(ctx context.Context, device *entity.Device) error {
	if device.ID == "" {
		device.ID = uuid.New().String()
	}

	now := time.Now()
	device.CreatedAt = now
	device.UpdatedAt = now

	docRef := r.client.Collection("devices").Doc(device.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		query := r.client.Collection("devices").
			Where("serialNumber", "==", device.SerialNumber).
			Limit(1)

		iter := tx.Documents(query)
		_, err := iter.Next()
		if err == nil {
			return errors.Conflict("This device has already been reported")
		}
		if err != iterator.Done {
			return errors.Internal("Failed to check serial number", err)
		}

		return tx.Set(docRef, device)
	})
	if err != nil {
		return err
	}

	return nil
}

func (r *firestoreDeviceRepository) GetByID(ctx context.Context, id string) (*entity.Device, error) {
	doc, err := r.client.Collection("devices").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Device", err)
		}
		return nil, errors.Internal("Failed to get device", err)
	}

	var device entity.Device
	if err := doc.DataTo(&device); err != nil {
		return nil, errors.Internal("Failed to parse device data", err)
	}

	return &device, nil
}

func (r *firestoreDeviceRepository) GetBySerial(ctx context.Context, serial string) (*entity.Device, error) {
	iter := r.client.Collection("devices").
		Where("serialNumber", "==", serial).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Device", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query device", err)
	}

	var device entity.Device
	if err := doc.DataTo(&device); err != nil {
		return nil, errors.Internal("Failed to parse device data", err)
	}

	return &device, nil
}

func (r *firestoreDeviceRepository) Update(ctx context.Context, device *entity.Device) error {
	device.UpdatedAt = time.Now()

	_, err := r.client.Collection("devices").Doc(device.ID).Set(ctx, device)
	if err != nil {
		return errors.Internal("Failed to update device", err)
	}

	return nil
}

func (r *firestoreDeviceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("devices").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete device", err)
	}

	return nil
}

func (r *firestoreDeviceRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Device, error) {
	query := r.client.Collection("devices").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreDeviceRepository) ListAll(ctx context.Context) ([]*entity.Device, error) {
	query := r.client.Collection("devices").
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreDeviceRepository) CountByUserID(ctx context.Context, userID, deviceStatus string) (int64, error) {
	query := r.client.Collection("devices").Where("userId", "==", userID)
	if deviceStatus != "" {
		query = query.Where("status", "==", deviceStatus)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count devices", err)
	}

	return int64(len(docs)), nil
}

func (r *firestoreDeviceRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Device, error) {
	iter := query.Documents(ctx)
	var devices []*entity.Device

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate devices", err)
		}

		var device entity.Device
		if err := doc.DataTo(&device); err != nil {
			return nil, errors.Internal("Failed to parse device data", err)
		}
		devices = append(devices, &device)
	}

	return devices, nil
}
