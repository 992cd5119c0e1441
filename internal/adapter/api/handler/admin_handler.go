package handler

import (
	"github.com/labstack/echo/v4"

	"repairlink/internal/usecase"
	"repairlink/pkg/errors"
	"repairlink/pkg/response"
	"repairlink/pkg/utils"
)

type AdminHandler struct {
	repairUseCase     *usecase.RepairUseCase
	technicianUseCase *usecase.TechnicianUseCase
	escrowUseCase     *usecase.EscrowUseCase
}

func NewAdminHandler(
	repairUseCase *usecase.RepairUseCase,
	technicianUseCase *usecase.TechnicianUseCase,
	escrowUseCase *usecase.EscrowUseCase,
) *AdminHandler {
	return &AdminHandler{
		repairUseCase:     repairUseCase,
		technicianUseCase: technicianUseCase,
		escrowUseCase:     escrowUseCase,
	}
}

func (h *AdminHandler) ListRepairs(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	repairs, total, err := h.repairUseCase.ListAllJobs(c.Request().Context(), status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, repairs, total)
}

func (h *AdminHandler) VerifyPayment(c echo.Context) error {
	repairID := c.Param("id")
	if repairID == "" {
		return response.Error(c, errors.BadRequest("Repair ID is required", nil))
	}

	repair, err := h.repairUseCase.ForceVerifyPayment(c.Request().Context(), repairID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, repair)
}

func (h *AdminHandler) CancelPayment(c echo.Context) error {
	repairID := c.Param("id")
	if repairID == "" {
		return response.Error(c, errors.BadRequest("Repair ID is required", nil))
	}

	repair, err := h.repairUseCase.ForceCancelPayment(c.Request().Context(), repairID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, repair)
}

func (h *AdminHandler) EscrowStats(c echo.Context) error {
	summary, err := h.escrowUseCase.Snapshot(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

func (h *AdminHandler) ListPendingApplications(c echo.Context) error {
	applicants, err := h.technicianUseCase.ListPendingApplications(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, applicants, int64(len(applicants)))
}

func (h *AdminHandler) ListVerifiedTechnicians(c echo.Context) error {
	technicians, err := h.technicianUseCase.ListVerified(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, technicians, int64(len(technicians)))
}

func (h *AdminHandler) ApproveTechnician(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	adminID := c.Get("uid").(string)

	user, err := h.technicianUseCase.Approve(c.Request().Context(), adminID, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type rejectTechnicianRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *AdminHandler) RejectTechnician(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	var req rejectTechnicianRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("uid").(string)

	verification, err := h.technicianUseCase.Reject(c.Request().Context(), adminID, userID, req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, verification)
}

type updateTechnicianRequest struct {
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Tier        *string  `json:"tier,omitempty" validate:"omitempty,oneof=Free Premium"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

func (h *AdminHandler) UpdateTechnician(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	var req updateTechnicianRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.technicianUseCase.UpdateDetails(c.Request().Context(), userID, usecase.UpdateTechnicianInput{
		Rating:      req.Rating,
		Tier:        req.Tier,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
