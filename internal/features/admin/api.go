package admin

import (
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/config"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AdminApi struct {
	controller *AdminController
	config     *config.Config
}

func NewAdminApi(controller *AdminController, config *config.Config) *AdminApi {
	return &AdminApi{controller: controller, config: config}
}

func (h *AdminApi) Setup(app *fiber.App) {
	admin := app.Group("/api/admin",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireRole(common_models.RoleAdmin))

	admin.Get("/users", h.controller.ListOfficers)
	admin.Delete("/users/:id", h.controller.RemoveOfficer)
	admin.Get("/audit", h.controller.AuditTrail)
	admin.Get("/audit/:entity/:id", h.controller.EntityAuditTrail)
	admin.Post("/hooks", h.controller.UpsertHook)
}
