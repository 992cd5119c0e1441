package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"repairlink/internal/usecase"
	"repairlink/pkg/errors"
	"repairlink/pkg/response"
)

type TechnicianHandler struct {
	technicianUseCase *usecase.TechnicianUseCase
}

func NewTechnicianHandler(technicianUseCase *usecase.TechnicianUseCase) *TechnicianHandler {
	return &TechnicianHandler{
		technicianUseCase: technicianUseCase,
	}
}

type technicianApplicationRequest struct {
	IDType          string   `json:"id_type" validate:"required"`
	IDNumber        string   `json:"id_number" validate:"required"`
	LegalName       string   `json:"legal_name" validate:"required"`
	DateOfBirth     string   `json:"date_of_birth,omitempty"`
	ProfilePhoto    string   `json:"profile_photo" validate:"required"`
	ShopName        string   `json:"shop_name" validate:"required"`
	ShopAddress     string   `json:"shop_address" validate:"required"`
	RegistrationDoc string   `json:"registration_document,omitempty"`
	TaxDoc          string   `json:"tax_document,omitempty"`
	AdditionalDocs  []string `json:"additional_documents,omitempty"`
}

func (h *TechnicianHandler) Apply(c echo.Context) error {
	var req technicianApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	var dob time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return response.Error(c, errors.BadRequest("date_of_birth must be YYYY-MM-DD", err))
		}
		dob = parsed
	}

	userID := c.Get("uid").(string)

	verification, err := h.technicianUseCase.Apply(c.Request().Context(), userID, usecase.TechnicianApplication{
		IDType:          req.IDType,
		IDNumber:        req.IDNumber,
		LegalName:       req.LegalName,
		DateOfBirth:     dob,
		ProfilePhoto:    req.ProfilePhoto,
		ShopName:        req.ShopName,
		ShopAddress:     req.ShopAddress,
		RegistrationDoc: req.RegistrationDoc,
		TaxDoc:          req.TaxDoc,
		AdditionalDocs:  req.AdditionalDocs,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, verification)
}

func (h *TechnicianHandler) GetApplication(c echo.Context) error {
	userID := c.Get("uid").(string)

	verification, err := h.technicianUseCase.GetApplication(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, verification)
}

type setAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

func (h *TechnicianHandler) SetAvailability(c echo.Context) error {
	var req setAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	user, err := h.technicianUseCase.SetAvailability(c.Request().Context(), userID, *req.IsAvailable)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *TechnicianHandler) ListAvailable(c echo.Context) error {
	technicians, err := h.technicianUseCase.RankAvailable(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.List(c, technicians, int64(len(technicians)))
}
