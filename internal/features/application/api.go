package application

import (
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/config"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ApplicationApi struct {
	controller *ApplicationController
	config     *config.Config
}

func NewApplicationApi(controller *ApplicationController, config *config.Config) *ApplicationApi {
	return &ApplicationApi{controller: controller, config: config}
}

func (h *ApplicationApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)
	stageRoles := middleware.RequireRole(
		common_models.RoleGS,
		common_models.RoleDS,
		common_models.RoleDistrict,
		common_models.RoleMinistry,
	)

	apps := app.Group("/api/applications", auth)

	apps.Post("/", h.controller.Create)
	apps.Get("/my-apps", h.controller.MyApplications)
	apps.Get("/queue", stageRoles, h.controller.Queue)
	apps.Post("/batch-approve", stageRoles, h.controller.BatchAdvance)
	apps.Get("/:id", h.controller.Get)
	apps.Delete("/:id", h.controller.Withdraw)
	apps.Post("/:id/decision", stageRoles, h.controller.Advance)
	apps.Post("/:id/escalate", stageRoles, h.controller.Escalate)
	apps.Post("/:id/deescalate", middleware.RequireRole(), h.controller.Deescalate)
	apps.Post("/:id/reissue", middleware.RequireRole(), h.controller.Reissue)
	apps.Get("/:id/download", h.controller.Download)

	// Legacy aliases, same data keyed by the caller's role
	app.Get("/api/ds/queue", auth, middleware.RequireRole(common_models.RoleDS), h.controller.Queue)
	app.Get("/api/ds/certificates", auth, middleware.RequireRole(common_models.RoleDS), h.controller.IssuedCertificates)
}
