package directory

import (
	"go-citizen/internal/common/apperr"
	"go-citizen/internal/features/user"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DirectoryController struct {
	Service  DirectoryService
	UserRepo user.UserRepository
}

func NewDirectoryController(service DirectoryService, userRepo user.UserRepository) *DirectoryController {
	return &DirectoryController{Service: service, UserRepo: userRepo}
}

func (c *DirectoryController) currentUser(ctx *fiber.Ctx) (*user.User, error) {
	claims := middleware.Claims(ctx)
	u, err := c.UserRepo.FindByNIC(ctx.UserContext(), claims.NIC)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user %s not found", claims.NIC)
	}
	return u, nil
}

// AddSubordinate godoc
// @Summary Create an account one hierarchy level below the caller
// @Tags directory
// @Accept json
// @Produce json
// @Param body body NewActor true "New actor"
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "Role not permitted"
// @Failure 409 {object} map[string]string "Duplicate NIC"
// @Router /api/directory/subordinates [post]
func (c *DirectoryController) AddSubordinate(ctx *fiber.Ctx) error {
	var input NewActor
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	claims := middleware.Claims(ctx)
	created, err := c.Service.AddSubordinate(ctx.UserContext(), claims.NIC, input)
	if err != nil {
		return apperr.Respond(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created",
		"details": fiber.Map{
			"fullname": created.FullName,
			"nic":      created.NIC,
			"role":     created.Role,
			"section":  created.Section,
			"division": created.Division,
		},
	})
}

func (c *DirectoryController) Reassign(ctx *fiber.Ctx) error {
	nic := ctx.Params("nic")

	var input struct {
		Placement
		ReportsTo string `json:"reports_to"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.Service.Reassign(ctx.UserContext(), nic, input.Placement, input.ReportsTo); err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Actor reassigned"})
}

// Divisions godoc
// @Summary List DS divisions
// @Tags directory
// @Produce json
// @Success 200 {array} DivisionSummary
// @Router /api/admin/divisions [get]
func (c *DirectoryController) Divisions(ctx *fiber.Ctx) error {
	divisions, err := c.Service.Divisions(ctx.UserContext())
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(divisions)
}

// GSOfficers lists the GS officers reporting to the calling DS.
func (c *DirectoryController) GSOfficers(ctx *fiber.Ctx) error {
	caller, err := c.currentUser(ctx)
	if err != nil {
		return apperr.Respond(ctx, err)
	}

	officers, err := c.Service.OfficersReportingTo(ctx.UserContext(), caller)
	if err != nil {
		return apperr.Respond(ctx, err)
	}

	out := make([]fiber.Map, 0, len(officers))
	for _, o := range officers {
		out = append(out, fiber.Map{
			"fullname":   o.FullName,
			"nic":        o.NIC,
			"gs_section": o.Section,
			"phone":      o.Phone,
		})
	}
	return ctx.JSON(out)
}

// Villagers lists citizens in the calling GS officer's section.
func (c *DirectoryController) Villagers(ctx *fiber.Ctx) error {
	caller, err := c.currentUser(ctx)
	if err != nil {
		return apperr.Respond(ctx, err)
	}

	villagers, err := c.Service.VillagersOf(ctx.UserContext(), caller)
	if err != nil {
		return apperr.Respond(ctx, err)
	}

	out := make([]fiber.Map, 0, len(villagers))
	for _, v := range villagers {
		out = append(out, fiber.Map{
			"id":       v.ID.Hex(),
			"fullname": v.FullName,
			"nic":      v.NIC,
			"address":  v.Address,
			"phone":    v.Phone,
		})
	}
	return ctx.JSON(out)
}
