package router

import (
	"repairlink/internal/adapter/api/handler"
	"repairlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDeviceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	deviceHandler := handler.GetDeviceHandler()

	// Public registry: anyone can browse reports, check a serial, or reach
	// out to an owner.
	e.GET("/v1/devices", deviceHandler.ListDevices)
	e.GET("/v1/devices/check/:serial", deviceHandler.CheckDevice)
	e.POST("/v1/devices/:id/contact", deviceHandler.ContactOwner)

	devices := e.Group("/v1/devices")
	devices.Use(authMiddleware.Authenticate)

	devices.POST("", deviceHandler.ReportDevice)
	devices.GET("/my", deviceHandler.ListMyDevices)
	devices.GET("/stats", deviceHandler.DeviceStats)
	devices.PATCH("/:id", deviceHandler.UpdateDeviceStatus)
	devices.DELETE("/:id", deviceHandler.DeleteDevice)
}
