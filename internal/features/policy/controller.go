package policy

import (
	"go-citizen/internal/common/apperr"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PolicyController struct {
	Service PolicyService
}

func NewPolicyController(service PolicyService) *PolicyController {
	return &PolicyController{Service: service}
}

// ListServices godoc
// @Summary List configured services
// @Tags services
// @Produce json
// @Success 200 {array} ServicePolicy
// @Router /api/admin/services [get]
func (c *PolicyController) ListServices(ctx *fiber.Ctx) error {
	policies, err := c.Service.ListPolicies(ctx.UserContext())
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(policies)
}

// UpsertService godoc
// @Summary Create or replace a service policy
// @Tags services
// @Accept json
// @Produce json
// @Param body body ServicePolicy true "Service policy"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid stage list"
// @Router /api/admin/services [post]
func (c *PolicyController) UpsertService(ctx *fiber.Ctx) error {
	var input ServicePolicy
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	claims := middleware.Claims(ctx)
	if err := c.Service.UpsertPolicy(ctx.UserContext(), claims.NIC, input); err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Service saved"})
}

// UpdateServiceTerms godoc
// @Summary Update fee, processing days and active flag of a service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} map[string]string
// @Router /api/admin/services/{id} [put]
func (c *PolicyController) UpdateServiceTerms(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input struct {
		Price  float64 `json:"price"`
		Days   int     `json:"days"`
		Active bool    `json:"active"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	claims := middleware.Claims(ctx)
	if err := c.Service.UpdateTerms(ctx.UserContext(), claims.NIC, id, input.Price, input.Days, input.Active); err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Service updated"})
}
