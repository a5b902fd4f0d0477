package chat

import (
	"github.com/gofiber/fiber/v2"
)

type ChatController struct {
	Service ChatService
}

func NewChatController(service ChatService) *ChatController {
	return &ChatController{Service: service}
}

// Chat godoc
// @Summary Ask the virtual assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param body body object true "Message"
// @Success 200 {object} map[string]string
// @Router /api/chat [post]
func (c *ChatController) Chat(ctx *fiber.Ctx) error {
	var input struct {
		Message string `json:"message"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	return ctx.JSON(fiber.Map{"response": c.Service.Reply(input.Message)})
}
