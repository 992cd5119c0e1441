package handler

import (
	"github.com/labstack/echo/v4"

	"repairlink/internal/usecase"
	"repairlink/pkg/response"
)

type PricingHandler struct {
	pricingUseCase *usecase.PricingUseCase
}

func NewPricingHandler(pricingUseCase *usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{
		pricingUseCase: pricingUseCase,
	}
}

type estimatePriceRequest struct {
	Brand string `json:"brand" validate:"required"`
	Model string `json:"model" validate:"required"`
	Issue string `json:"issue" validate:"required"`
}

func (h *PricingHandler) EstimatePrice(c echo.Context) error {
	var req estimatePriceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	quote, err := h.pricingUseCase.Estimate(c.Request().Context(), req.Brand, req.Model, req.Issue)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quote)
}
