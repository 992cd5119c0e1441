package router

import (
	"repairlink/internal/adapter/api/handler"
	"repairlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/repairs", adminHandler.ListRepairs)
	admin.POST("/repairs/:id/verify-payment", adminHandler.VerifyPayment)
	admin.POST("/repairs/:id/cancel-payment", adminHandler.CancelPayment)
	admin.GET("/escrow-stats", adminHandler.EscrowStats)

	admin.GET("/technicians/pending", adminHandler.ListPendingApplications)
	admin.GET("/technicians/verified", adminHandler.ListVerifiedTechnicians)
	admin.POST("/technicians/:id/approve", adminHandler.ApproveTechnician)
	admin.POST("/technicians/:id/reject", adminHandler.RejectTechnician)
	admin.PATCH("/technicians/:id", adminHandler.UpdateTechnician)
}
