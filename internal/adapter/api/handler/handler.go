package handler

import (
	"repairlink/internal/usecase"
)

var (
	repairHandler     *RepairHandler
	pricingHandler    *PricingHandler
	technicianHandler *TechnicianHandler
	adminHandler      *AdminHandler
	deviceHandler     *DeviceHandler
)

func Setup(
	repairUseCase *usecase.RepairUseCase,
	pricingUseCase *usecase.PricingUseCase,
	technicianUseCase *usecase.TechnicianUseCase,
	escrowUseCase *usecase.EscrowUseCase,
	deviceUseCase *usecase.DeviceUseCase,
) {
	repairHandler = NewRepairHandler(repairUseCase)
	pricingHandler = NewPricingHandler(pricingUseCase)
	technicianHandler = NewTechnicianHandler(technicianUseCase)
	adminHandler = NewAdminHandler(repairUseCase, technicianUseCase, escrowUseCase)
	deviceHandler = NewDeviceHandler(deviceUseCase)
}

func GetRepairHandler() *RepairHandler {
	return repairHandler
}

func GetPricingHandler() *PricingHandler {
	return pricingHandler
}

func GetTechnicianHandler() *TechnicianHandler {
	return technicianHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetDeviceHandler() *DeviceHandler {
	return deviceHandler
}
