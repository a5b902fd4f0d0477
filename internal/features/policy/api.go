package policy

import (
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/config"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PolicyApi struct {
	controller *PolicyController
	config     *config.Config
}

func NewPolicyApi(controller *PolicyController, config *config.Config) *PolicyApi {
	return &PolicyApi{controller: controller, config: config}
}

func (h *PolicyApi) Setup(app *fiber.App) {
	services := app.Group("/api/admin/services",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireRole(common_models.RoleAdmin))

	services.Get("/", h.controller.ListServices)
	services.Post("/", h.controller.UpsertService)
	services.Put("/:id", h.controller.UpdateServiceTerms)
}
