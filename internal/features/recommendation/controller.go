package recommendation

import (
	"go-citizen/internal/common/apperr"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RecommendationController struct {
	Service RecommendationService
}

func NewRecommendationController(service RecommendationService) *RecommendationController {
	return &RecommendationController{Service: service}
}

// GetRecommendations godoc
// @Summary Product recommendations based on completed applications
// @Tags recommendations
// @Produce json
// @Success 200 {object} Recommendations
// @Router /api/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	recs, err := c.Service.ForCitizen(ctx.UserContext(), claims.NIC)
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(recs)
}
