package auth

import (
	"go-citizen/internal/common/apperr"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Service AuthService
}

func NewAuthController(service AuthService) *AuthController {
	return &AuthController{Service: service}
}

// Register godoc
// @Summary Register a citizen account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterInput true "Registration"
// @Success 201 {object} map[string]string
// @Failure 409 {object} map[string]string "NIC already registered"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *fiber.Ctx) error {
	var input RegisterInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.Service.Register(ctx.UserContext(), input); err != nil {
		return apperr.Respond(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"nic":     input.NIC,
	})
}

// Login godoc
// @Summary Log in with NIC and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginInput true "Credentials"
// @Success 200 {object} LoginResult
// @Failure 400 {object} map[string]string "Invalid NIC or password"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input LoginInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := c.Service.Login(ctx.UserContext(), input)
	if err != nil {
		return apperr.Respond(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message":      "Login successful",
		"access_token": result.Token,
		"token_type":   "bearer",
		"role":         result.Role,
		"name":         result.FullName,
	})
}
