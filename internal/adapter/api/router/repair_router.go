package router

import (
	"repairlink/internal/adapter/api/handler"
	"repairlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupRepairRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	repairHandler := handler.GetRepairHandler()
	pricingHandler := handler.GetPricingHandler()

	repairs := e.Group("/v1/repairs")
	repairs.Use(authMiddleware.Authenticate)

	repairs.POST("", repairHandler.CreateRepair)
	repairs.GET("/my", repairHandler.ListMyRepairs)
	repairs.GET("/available", repairHandler.ListAvailableRepairs)
	repairs.POST("/estimate-price", pricingHandler.EstimatePrice)
	repairs.GET("/:id", repairHandler.GetRepair)
	repairs.POST("/:id/accept", repairHandler.AcceptRepair)
	repairs.POST("/:id/pay", repairHandler.PayRepair)
	repairs.POST("/:id/rate", repairHandler.RateRepair)
	repairs.PATCH("/:id/status", repairHandler.UpdateRepairStatus)
	repairs.POST("/:id/cancel", repairHandler.CancelRepair)
}
