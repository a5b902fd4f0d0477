package notification

import (
	"go-citizen/internal/config"
	"go-citizen/internal/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type NotificationApi struct {
	controller *NotificationController
	config     *config.Config
}

func NewNotificationApi(controller *NotificationController, config *config.Config) *NotificationApi {
	return &NotificationApi{controller: controller, config: config}
}

func (h *NotificationApi) Setup(app *fiber.App) {
	notifications := app.Group("/api/notifications", middleware.AuthMiddleware(h.config.SkipAuth))
	notifications.Get("/", h.controller.List)
	notifications.Put("/:id/read", h.controller.MarkRead)

	app.Get("/api/ws/notifications", websocket.New(h.controller.HandleWebSocket))
}
