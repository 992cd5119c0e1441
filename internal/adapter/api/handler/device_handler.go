package handler

import (
	"github.com/labstack/echo/v4"

	"repairlink/internal/usecase"
	"repairlink/pkg/errors"
	"repairlink/pkg/response"
)

type DeviceHandler struct {
	deviceUseCase *usecase.DeviceUseCase
}

func NewDeviceHandler(deviceUseCase *usecase.DeviceUseCase) *DeviceHandler {
	return &DeviceHandler{
		deviceUseCase: deviceUseCase,
	}
}

type reportDeviceRequest struct {
	Brand        string `json:"brand" validate:"required"`
	Model        string `json:"model" validate:"required"`
	SerialNumber string `json:"serial_number" validate:"required"`
	Location     string `json:"location,omitempty"`
	Description  string `json:"description,omitempty"`
	ImageBase64  string `json:"image_base64,omitempty"`
}

func (h *DeviceHandler) ReportDevice(c echo.Context) error {
	var req reportDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	device, err := h.deviceUseCase.Report(c.Request().Context(), userID, usecase.ReportDeviceInput{
		Brand:        req.Brand,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Location:     req.Location,
		Description:  req.Description,
		ImageBase64:  req.ImageBase64,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, device)
}

func (h *DeviceHandler) CheckDevice(c echo.Context) error {
	serial := c.Param("serial")
	if serial == "" {
		return response.Error(c, errors.BadRequest("Serial number is required", nil))
	}

	check, err := h.deviceUseCase.CheckStatus(c.Request().Context(), serial)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, check)
}

func (h *DeviceHandler) ListMyDevices(c echo.Context) error {
	userID := c.Get("uid").(string)

	devices, err := h.deviceUseCase.ListMine(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, devices, int64(len(devices)))
}

func (h *DeviceHandler) ListDevices(c echo.Context) error {
	devices, err := h.deviceUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, devices, int64(len(devices)))
}

type updateDeviceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=lost recovered"`
}

func (h *DeviceHandler) UpdateDeviceStatus(c echo.Context) error {
	deviceID := c.Param("id")
	if deviceID == "" {
		return response.Error(c, errors.BadRequest("Device ID is required", nil))
	}

	var req updateDeviceStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	device, err := h.deviceUseCase.UpdateStatus(c.Request().Context(), userID, deviceID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, device)
}

func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	deviceID := c.Param("id")
	if deviceID == "" {
		return response.Error(c, errors.BadRequest("Device ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.deviceUseCase.Delete(c.Request().Context(), userID, deviceID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Device report deleted"})
}

func (h *DeviceHandler) DeviceStats(c echo.Context) error {
	userID := c.Get("uid").(string)

	stats, err := h.deviceUseCase.Stats(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

type contactOwnerRequest struct {
	SenderName  string `json:"sender_name" validate:"required"`
	SenderEmail string `json:"sender_email" validate:"required,email"`
	Message     string `json:"message" validate:"required"`
}

func (h *DeviceHandler) ContactOwner(c echo.Context) error {
	deviceID := c.Param("id")
	if deviceID == "" {
		return response.Error(c, errors.BadRequest("Device ID is required", nil))
	}

	var req contactOwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.deviceUseCase.ContactOwner(c.Request().Context(), deviceID, req.SenderName, req.SenderEmail, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Message relayed to the owner"})
}
