package recommendation

import (
	"go-citizen/internal/config"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RecommendationApi struct {
	controller *RecommendationController
	config     *config.Config
}

func NewRecommendationApi(controller *RecommendationController, config *config.Config) *RecommendationApi {
	return &RecommendationApi{controller: controller, config: config}
}

func (h *RecommendationApi) Setup(app *fiber.App) {
	app.Get("/api/recommendations",
		middleware.AuthMiddleware(h.config.SkipAuth),
		h.controller.GetRecommendations)
}
