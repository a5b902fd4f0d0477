package land

import (
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/config"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LandApi struct {
	controller *LandController
	config     *config.Config
}

func NewLandApi(controller *LandController, config *config.Config) *LandApi {
	return &LandApi{controller: controller, config: config}
}

func (h *LandApi) Setup(app *fiber.App) {
	disputes := app.Group("/api/gs/land",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireRole(common_models.RoleGS, common_models.RoleDS))

	disputes.Get("/", h.controller.ListDisputes)
	disputes.Post("/", h.controller.RegisterDispute)
	disputes.Put("/:id/resolve", h.controller.ResolveDispute)
}
