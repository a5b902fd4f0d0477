package dashboard

import (
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/config"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	controller *DashboardController
	config     *config.Config
}

func NewDashboardApi(controller *DashboardController, config *config.Config) *DashboardApi {
	return &DashboardApi{controller: controller, config: config}
}

func (h *DashboardApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)

	app.Get("/api/gs/stats", auth,
		middleware.RequireRole(common_models.RoleGS),
		h.controller.GSStats)

	app.Get("/api/ds/stats", auth,
		middleware.RequireRole(common_models.RoleDS, common_models.RoleDistrict),
		h.controller.DSStats)

	admin := app.Group("/api/admin", auth,
		middleware.RequireRole(common_models.RoleAdmin))
	admin.Get("/revenue", h.controller.Revenue)
	admin.Get("/revenue/export", h.controller.RevenueExport)
	admin.Get("/stats", h.controller.SystemStats)
}
