package router

import (
	"repairlink/internal/adapter/api/handler"
	"repairlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupTechnicianRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	technicianHandler := handler.GetTechnicianHandler()

	// Public directory of available technicians
	e.GET("/v1/technicians", technicianHandler.ListAvailable)

	technician := e.Group("/v1/technician")
	technician.Use(authMiddleware.Authenticate)

	technician.POST("/apply", technicianHandler.Apply)
	technician.GET("/application", technicianHandler.GetApplication)
	technician.PATCH("/availability", technicianHandler.SetAvailability)
}
