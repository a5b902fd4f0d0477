package user

import (
	"go-citizen/internal/common/apperr"
	"go-citizen/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Service UserService
}

func NewUserController(service UserService) *UserController {
	return &UserController{Service: service}
}

// GetProfile godoc
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Success 200 {object} User
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/users/me [get]
func (c *UserController) GetProfile(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	user, err := c.Service.GetProfile(ctx.UserContext(), claims.NIC)
	if err != nil {
		return apperr.Respond(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"nic":      user.NIC,
		"fullname": user.FullName,
		"phone":    user.Phone,
		"email":    user.Email,
		"address":  user.Address,
		"role":     user.Role,
		"section":  user.Section,
		"division": user.Division,
	})
}

// UpdateProfile godoc
// @Summary Update current user profile
// @Tags users
// @Accept json
// @Produce json
// @Param body body ProfileUpdate true "Profile fields"
// @Success 200 {object} map[string]string
// @Router /api/users/me [put]
func (c *UserController) UpdateProfile(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	var input ProfileUpdate
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.Service.UpdateProfile(ctx.UserContext(), claims.NIC, input); err != nil {
		return apperr.Respond(ctx, err)
	}

	return ctx.JSON(fiber.Map{"message": "Profile updated successfully"})
}

// Wallet godoc
// @Summary List completed applications as wallet documents
// @Tags users
// @Produce json
// @Success 200 {array} WalletDocument
// @Router /api/users/wallet [get]
func (c *UserController) Wallet(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	docs, err := c.Service.Wallet(ctx.UserContext(), claims.NIC)
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(docs)
}
