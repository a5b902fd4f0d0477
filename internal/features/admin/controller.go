package admin

import (
	"strconv"

	"go-citizen/internal/common/apperr"
	"go-citizen/internal/features/application"
	"go-citizen/internal/features/audit"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AdminController struct {
	Service AdminService
	Audit   audit.AuditService
	Hooks   application.HookRepository
}

func NewAdminController(service AdminService, auditSvc audit.AuditService, hooks application.HookRepository) *AdminController {
	return &AdminController{Service: service, Audit: auditSvc, Hooks: hooks}
}

// ListOfficers godoc
// @Summary List all officer accounts
// @Tags admin
// @Produce json
// @Success 200 {array} OfficerSummary
// @Router /api/admin/users [get]
func (c *AdminController) ListOfficers(ctx *fiber.Ctx) error {
	officers, err := c.Service.ListOfficers(ctx.UserContext())
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(officers)
}

// RemoveOfficer godoc
// @Summary Remove an officer account
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/users/{id} [delete]
func (c *AdminController) RemoveOfficer(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if err := c.Service.RemoveOfficer(ctx.UserContext(), claims.NIC, ctx.Params("id")); err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Officer removed successfully"})
}

// AuditTrail godoc
// @Summary Recent audit-log entries
// @Tags admin
// @Produce json
// @Param limit query int false "Max entries" default(50)
// @Success 200 {array} common_models.AuditLog
// @Router /api/admin/audit [get]
func (c *AdminController) AuditTrail(ctx *fiber.Ctx) error {
	limit, err := strconv.ParseInt(ctx.Query("limit", "50"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 50
	}

	entries, err := c.Audit.ListRecent(ctx.UserContext(), limit)
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(entries)
}

// EntityAuditTrail godoc
// @Summary Audit-log entries for one entity
// @Tags admin
// @Produce json
// @Param entity path string true "Entity type"
// @Param id path string true "Entity ID"
// @Success 200 {array} common_models.AuditLog
// @Router /api/admin/audit/{entity}/{id} [get]
func (c *AdminController) EntityAuditTrail(ctx *fiber.Ctx) error {
	entries, err := c.Audit.ListForEntity(ctx.UserContext(), ctx.Params("entity"), ctx.Params("id"))
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(entries)
}

// UpsertHook godoc
// @Summary Install or replace the workflow hook for a service type
// @Tags admin
// @Accept json
// @Produce json
// @Param body body application.WorkflowHook true "Hook"
// @Success 200 {object} map[string]string
// @Router /api/admin/hooks [post]
func (c *AdminController) UpsertHook(ctx *fiber.Ctx) error {
	var hook application.WorkflowHook
	if err := ctx.BodyParser(&hook); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if hook.ServiceType == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "service_type is required"})
	}

	if err := c.Hooks.Upsert(ctx.UserContext(), hook); err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Hook saved"})
}
