package router

import (
	"repairlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupRepairRouter(e, authMiddleware)
	SetupTechnicianRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupDeviceRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
