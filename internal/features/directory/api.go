package directory

import (
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/config"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DirectoryApi struct {
	controller *DirectoryController
	config     *config.Config
}

func NewDirectoryApi(controller *DirectoryController, config *config.Config) *DirectoryApi {
	return &DirectoryApi{controller: controller, config: config}
}

func (h *DirectoryApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(h.config.SkipAuth)

	dir := app.Group("/api/directory", auth)
	dir.Post("/subordinates", middleware.RequireRole(
		common_models.RoleGS,
		common_models.RoleDS,
		common_models.RoleDistrict,
		common_models.RoleMinistry,
	), h.controller.AddSubordinate)
	dir.Put("/actors/:nic/placement", middleware.RequireRole(), h.controller.Reassign)

	// Hierarchy views kept on their original route prefixes
	app.Get("/api/admin/divisions", auth, middleware.RequireRole(), h.controller.Divisions)
	app.Get("/api/ds/gs-officers", auth, middleware.RequireRole(common_models.RoleDS), h.controller.GSOfficers)
	app.Get("/api/gs/villagers", auth, middleware.RequireRole(common_models.RoleGS), h.controller.Villagers)

	// Legacy alias used by the first frontend build
	app.Post("/api/gs/add-citizen", auth, middleware.RequireRole(common_models.RoleGS), h.controller.AddSubordinate)
}
