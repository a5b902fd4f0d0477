package application

import (
	"os"

	"go-citizen/internal/common/apperr"
	"go-citizen/internal/features/certificate"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ApplicationController struct {
	Service ApplicationService
	Issuer  certificate.Issuer
}

func NewApplicationController(service ApplicationService, issuer certificate.Issuer) *ApplicationController {
	return &ApplicationController{Service: service, Issuer: issuer}
}

func actorFrom(ctx *fiber.Ctx) Actor {
	claims := middleware.Claims(ctx)
	return Actor{NIC: claims.NIC, Role: claims.Role}
}

// Create godoc
// @Summary Submit a new service application
// @Tags applications
// @Accept json
// @Produce json
// @Param body body object true "service_type and details"
// @Success 201 {object} CreateResult
// @Failure 400 {object} map[string]string "Unknown service type"
// @Router /api/applications [post]
func (c *ApplicationController) Create(ctx *fiber.Ctx) error {
	var input struct {
		ServiceType string            `json:"service_type"`
		Details     map[string]string `json:"details"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := c.Service.Create(ctx.UserContext(), actorFrom(ctx), input.ServiceType, input.Details)
	if err != nil {
		return apperr.Respond(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":        "Application submitted successfully",
		"id":             result.ID,
		"approval_level": result.ApprovalLevel,
		"current_stage":  result.CurrentStage,
		"assigned_to":    result.AssignedTo,
	})
}

// Advance godoc
// @Summary Record an approval or rejection at the current stage
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param body body DecisionInput true "Decision"
// @Success 200 {object} Application
// @Failure 403 {object} map[string]string "Stage mismatch"
// @Failure 409 {object} map[string]string "Terminal, escalated or concurrent"
// @Router /api/applications/{id}/decision [post]
func (c *ApplicationController) Advance(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input DecisionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := c.Service.Advance(ctx.UserContext(), id, actorFrom(ctx), input)
	if err != nil {
		return apperr.Respond(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message":       "Decision recorded",
		"status":        updated.Status,
		"current_stage": updated.CurrentStage,
		"chain":         updated.Chain,
	})
}

// BatchAdvance godoc
// @Summary Approve a list of applications, best effort
// @Tags applications
// @Accept json
// @Produce json
// @Param body body object true "application_ids"
// @Success 200 {object} BatchResult
// @Router /api/applications/batch-approve [post]
func (c *ApplicationController) BatchAdvance(ctx *fiber.Ctx) error {
	var input struct {
		ApplicationIDs []string `json:"application_ids"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := c.Service.BatchAdvance(ctx.UserContext(), input.ApplicationIDs, actorFrom(ctx))
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(result)
}

// Withdraw godoc
// @Summary Withdraw a non-terminal application
// @Tags applications
// @Param id path string true "Application ID"
// @Success 200 {object} map[string]bool
// @Router /api/applications/{id} [delete]
func (c *ApplicationController) Withdraw(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	if err := c.Service.Withdraw(ctx.UserContext(), id, actorFrom(ctx)); err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(fiber.Map{"ok": true})
}

// Queue godoc
// @Summary List Pending applications waiting at the caller's stage
// @Tags applications
// @Produce json
// @Success 200 {array} Application
// @Router /api/applications/queue [get]
func (c *ApplicationController) Queue(ctx *fiber.Ctx) error {
	apps, err := c.Service.Queue(ctx.UserContext(), actorFrom(ctx))
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(apps)
}

// IssuedCertificates godoc
// @Summary List all Completed applications with issued documents
// @Tags applications
// @Produce json
// @Success 200 {array} Application
// @Router /api/ds/certificates [get]
func (c *ApplicationController) IssuedCertificates(ctx *fiber.Ctx) error {
	apps, err := c.Service.IssuedCertificates(ctx.UserContext(), actorFrom(ctx))
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(apps)
}

// MyApplications godoc
// @Summary List the caller's applications
// @Tags applications
// @Produce json
// @Success 200 {array} Application
// @Router /api/applications/my-apps [get]
func (c *ApplicationController) MyApplications(ctx *fiber.Ctx) error {
	apps, err := c.Service.MyApplications(ctx.UserContext(), actorFrom(ctx))
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(apps)
}

func (c *ApplicationController) Get(ctx *fiber.Ctx) error {
	app, err := c.Service.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(app)
}

// Escalate godoc
// @Summary Escalate an application, freezing further decisions
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} Application
// @Router /api/applications/{id}/escalate [post]
func (c *ApplicationController) Escalate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input struct {
		Reason string `json:"reason"`
		Level  string `json:"level"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := c.Service.Escalate(ctx.UserContext(), id, actorFrom(ctx), input.Reason, input.Level)
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(updated)
}

func (c *ApplicationController) Deescalate(ctx *fiber.Ctx) error {
	updated, err := c.Service.Deescalate(ctx.UserContext(), ctx.Params("id"), actorFrom(ctx))
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(updated)
}

func (c *ApplicationController) Reissue(ctx *fiber.Ctx) error {
	app, err := c.Service.ReissueCertificate(ctx.UserContext(), ctx.Params("id"), actorFrom(ctx))
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"message":        "Certificate re-issued",
		"certificate_id": app.CertificateID,
	})
}

// Download godoc
// @Summary Download the generated certificate PDF
// @Tags applications
// @Param id path string true "Application ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Certificate not ready yet"
// @Router /api/applications/{id}/download [get]
func (c *ApplicationController) Download(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	path := c.Issuer.FilePath(id)

	if _, err := os.Stat(path); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Certificate not ready yet"})
	}

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="Certificate_`+id+`.pdf"`)
	ctx.Type("pdf")
	return ctx.SendFile(path)
}
