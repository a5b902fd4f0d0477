package product

import (
	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/config"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProductApi struct {
	controller *ProductController
	config     *config.Config
}

func NewProductApi(controller *ProductController, config *config.Config) *ProductApi {
	return &ProductApi{controller: controller, config: config}
}

func (h *ProductApi) Setup(app *fiber.App) {
	products := app.Group("/api/products")

	// the marketplace listing is public
	products.Get("/", h.controller.ListProducts)

	products.Post("/",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireRole(common_models.RoleAdmin),
		h.controller.CreateProduct)
}
