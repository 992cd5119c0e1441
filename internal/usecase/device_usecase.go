package usecase

import (
	"context"
	"fmt"
	"strings"

	"repairlink/internal/domain/entity"
	"repairlink/internal/domain/repository"
	"repairlink/pkg/errors"
	"repairlink/pkg/logger"
)

type DeviceUseCase struct {
	deviceRepo repository.DeviceRepository
	userRepo   repository.UserRepository
}

func NewDeviceUseCase(deviceRepo repository.DeviceRepository, userRepo repository.UserRepository) *DeviceUseCase {
	return &DeviceUseCase{
		deviceRepo: deviceRepo,
		userRepo:   userRepo,
	}
}

type ReportDeviceInput struct {
	Brand        string
	Model        string
	SerialNumber string
	Location     string
	Description  string
	ImageBase64  string
}

// Report registers a lost device under the caller. The contact email comes
// from the reporter's account, not the request.
func (uc *DeviceUseCase) Report(ctx context.Context, ownerID string, input ReportDeviceInput) (*entity.Device, error) {
	if input.Brand == "" || input.Model == "" || input.SerialNumber == "" {
		return nil, errors.BadRequest("brand, model and serial number are required", nil)
	}

	owner, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	device := &entity.Device{
		UserID:       ownerID,
		Brand:        input.Brand,
		Model:        input.Model,
		SerialNumber: strings.TrimSpace(input.SerialNumber),
		ContactEmail: owner.Email,
		Location:     input.Location,
		Description:  input.Description,
		ImageBase64:  input.ImageBase64,
		Status:       entity.DeviceStatusLost,
	}

	if err := uc.deviceRepo.Create(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

// StatusCheck is the public answer to "is this IMEI reported?".
type StatusCheck struct {
	Verdict string         `json:"verdict"`
	Message string         `json:"message"`
	Device  *entity.Device `json:"device,omitempty"`
}

// CheckStatus looks up a serial in the public registry. Unknown serials get a
// CLEAN verdict rather than an error.
func (uc *DeviceUseCase) CheckStatus(ctx context.Context, serial string) (*StatusCheck, error) {
	if serial == "" {
		return nil, errors.BadRequest("serial number is required", nil)
	}

	device, err := uc.deviceRepo.GetBySerial(ctx, strings.TrimSpace(serial))
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &StatusCheck{
				Verdict: "CLEAN",
				Message: "No record found. Device is safe.",
			}, nil
		}
		return nil, err
	}

	return &StatusCheck{
		Verdict: strings.ToUpper(device.Status),
		Message: fmt.Sprintf("Device with IMEI %s is reported as %s.", device.SerialNumber, device.Status),
		Device:  device,
	}, nil
}

func (uc *DeviceUseCase) ListMine(ctx context.Context, ownerID string) ([]*entity.Device, error) {
	return uc.deviceRepo.ListByUserID(ctx, ownerID)
}

func (uc *DeviceUseCase) ListAll(ctx context.Context) ([]*entity.Device, error) {
	return uc.deviceRepo.ListAll(ctx)
}

// UpdateStatus flips a report between lost and recovered; owner only.
func (uc *DeviceUseCase) UpdateStatus(ctx context.Context, ownerID, deviceID, status string) (*entity.Device, error) {
	if status != entity.DeviceStatusLost && status != entity.DeviceStatusRecovered {
		return nil, errors.BadRequest("status must be lost or recovered", nil)
	}

	device, err := uc.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	if device.UserID != ownerID {
		return nil, errors.Forbidden("Not authorized to update this device", nil)
	}

	device.Status = status
	if err := uc.deviceRepo.Update(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

func (uc *DeviceUseCase) Delete(ctx context.Context, ownerID, deviceID string) error {
	device, err := uc.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return err
	}

	if device.UserID != ownerID {
		return errors.Forbidden("Not authorized to delete this device", nil)
	}

	return uc.deviceRepo.Delete(ctx, deviceID)
}

func (uc *DeviceUseCase) Stats(ctx context.Context, ownerID string) (*entity.DeviceStats, error) {
	total, err := uc.deviceRepo.CountByUserID(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}

	recovered, err := uc.deviceRepo.CountByUserID(ctx, ownerID, entity.DeviceStatusRecovered)
	if err != nil {
		return nil, err
	}

	return &entity.DeviceStats{
		TotalReported: total,
		Recovered:     recovered,
		Pending:       total - recovered,
	}, nil
}

// ContactOwner relays a finder's message to the report's contact email. The
// dispatch is log-only; real notification delivery sits outside this service.
func (uc *DeviceUseCase) ContactOwner(ctx context.Context, deviceID, senderName, senderEmail, message string) error {
	if senderName == "" || senderEmail == "" || message == "" {
		return errors.BadRequest("sender name, sender email and message are required", nil)
	}

	device, err := uc.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return err
	}

	logger.Info("secure message dispatched: to=%s from=%s <%s> device=%s %s (IMEI %s) message=%q",
		device.ContactEmail, senderName, senderEmail, device.Brand, device.Model, device.SerialNumber, message)

	return nil
}
