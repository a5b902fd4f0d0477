package land

import (
	"go-citizen/internal/common/apperr"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LandController struct {
	Service LandService
}

func NewLandController(service LandService) *LandController {
	return &LandController{Service: service}
}

// RegisterDispute godoc
// @Summary Register a land dispute
// @Tags land
// @Accept json
// @Produce json
// @Param body body DisputeInput true "Dispute"
// @Success 200 {object} map[string]string
// @Router /api/gs/land [post]
func (c *LandController) RegisterDispute(ctx *fiber.Ctx) error {
	var input DisputeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	claims := middleware.Claims(ctx)
	id, err := c.Service.Register(ctx.UserContext(), claims.NIC, input)
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Dispute registered", "id": id})
}

// ListDisputes godoc
// @Summary List land disputes
// @Tags land
// @Produce json
// @Success 200 {array} LandDispute
// @Router /api/gs/land [get]
func (c *LandController) ListDisputes(ctx *fiber.Ctx) error {
	disputes, err := c.Service.List(ctx.UserContext())
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(disputes)
}

// ResolveDispute godoc
// @Summary Mark a land dispute as resolved
// @Tags land
// @Produce json
// @Param id path string true "Dispute ID"
// @Success 200 {object} map[string]string
// @Router /api/gs/land/{id}/resolve [put]
func (c *LandController) ResolveDispute(ctx *fiber.Ctx) error {
	if err := c.Service.Resolve(ctx.UserContext(), ctx.Params("id")); err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Dispute resolved"})
}
