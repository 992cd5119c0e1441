package handler

import (
	"github.com/labstack/echo/v4"

	"repairlink/internal/usecase"
	"repairlink/pkg/errors"
	"repairlink/pkg/response"
	"repairlink/pkg/utils"
)

type RepairHandler struct {
	repairUseCase *usecase.RepairUseCase
}

func NewRepairHandler(repairUseCase *usecase.RepairUseCase) *RepairHandler {
	return &RepairHandler{
		repairUseCase: repairUseCase,
	}
}

type createRepairRequest struct {
	DeviceType     string `json:"device_type,omitempty"`
	Brand          string `json:"brand" validate:"required"`
	Model          string `json:"model" validate:"required"`
	Issue          string `json:"issue" validate:"required"`
	CanPowerOn     bool   `json:"can_power_on"`
	Address        string `json:"address,omitempty"`
	ShippingMethod string `json:"shipping_method,omitempty" validate:"omitempty,oneof=Carry-in Shipping"`
	EstimatedPrice int64  `json:"estimated_price" validate:"required,gt=0"`
	EstimatedTime  string `json:"estimated_time,omitempty"`
}

func (h *RepairHandler) CreateRepair(c echo.Context) error {
	var req createRepairRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	repair, err := h.repairUseCase.CreateJob(c.Request().Context(), userID, usecase.CreateRepairInput{
		DeviceType:     req.DeviceType,
		Brand:          req.Brand,
		Model:          req.Model,
		Issue:          req.Issue,
		CanPowerOn:     req.CanPowerOn,
		Address:        req.Address,
		ShippingMethod: req.ShippingMethod,
		EstimatedPrice: req.EstimatedPrice,
		EstimatedTime:  req.EstimatedTime,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, repair)
}

func (h *RepairHandler) GetRepair(c echo.Context) error {
	repairID := c.Param("id")
	if repairID == "" {
		return response.Error(c, errors.BadRequest("Repair ID is required", nil))
	}

	userID := c.Get("uid").(string)

	repair, err := h.repairUseCase.GetJob(c.Request().Context(), userID, repairID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, repair)
}

func (h *RepairHandler) ListMyRepairs(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	userID := c.Get("uid").(string)

	repairs, total, err := h.repairUseCase.ListMyJobs(c.Request().Context(), userID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, repairs, total)
}

func (h *RepairHandler) ListAvailableRepairs(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	repairs, total, err := h.repairUseCase.ListAvailableJobs(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, repairs, total)
}

func (h *RepairHandler) AcceptRepair(c echo.Context) error {
	repairID := c.Param("id")
	if repairID == "" {
		return response.Error(c, errors.BadRequest("Repair ID is required", nil))
	}

	userID := c.Get("uid").(string)

	repair, err := h.repairUseCase.AcceptJob(c.Request().Context(), userID, repairID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, repair)
}

type payRepairRequest struct {
	TransactionMessage string `json:"transaction_message,omitempty"`
}

func (h *RepairHandler) PayRepair(c echo.Context) error {
	repairID := c.Param("id")
	if repairID == "" {
		return response.Error(c, errors.BadRequest("Repair ID is required", nil))
	}

	var req payRepairRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	repair, err := h.repairUseCase.PayJob(c.Request().Context(), userID, repairID, req.TransactionMessage)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, repair)
}

type rateRepairRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review,omitempty"`
}

func (h *RepairHandler) RateRepair(c echo.Context) error {
	repairID := c.Param("id")
	if repairID == "" {
		return response.Error(c, errors.BadRequest("Repair ID is required", nil))
	}

	var req rateRepairRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	repair, err := h.repairUseCase.RateJob(c.Request().Context(), userID, repairID, req.Rating, req.Review)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, repair)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *RepairHandler) UpdateRepairStatus(c echo.Context) error {
	repairID := c.Param("id")
	if repairID == "" {
		return response.Error(c, errors.BadRequest("Repair ID is required", nil))
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	repair, err := h.repairUseCase.AdvanceStatus(c.Request().Context(), userID, repairID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, repair)
}

func (h *RepairHandler) CancelRepair(c echo.Context) error {
	repairID := c.Param("id")
	if repairID == "" {
		return response.Error(c, errors.BadRequest("Repair ID is required", nil))
	}

	userID := c.Get("uid").(string)

	repair, err := h.repairUseCase.CancelJob(c.Request().Context(), userID, repairID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, repair)
}
