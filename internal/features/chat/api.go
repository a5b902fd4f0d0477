package chat

import (
	"github.com/gofiber/fiber/v2"
)

type ChatApi struct {
	controller *ChatController
}

func NewChatApi(controller *ChatController) *ChatApi {
	return &ChatApi{controller: controller}
}

func (h *ChatApi) Setup(app *fiber.App) {
	app.Post("/api/chat", h.controller.Chat)
}
