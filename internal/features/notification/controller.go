package notification

import (
	"go-citizen/internal/common/apperr"
	"go-citizen/internal/middleware"
	"go-citizen/pkg/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type NotificationController struct {
	Service NotificationService
	Hub     *Hub
}

func NewNotificationController(service NotificationService, hub *Hub) *NotificationController {
	return &NotificationController{Service: service, Hub: hub}
}

// List godoc
// @Summary List notifications for the caller
// @Tags notifications
// @Produce json
// @Success 200 {array} Notification
// @Router /api/notifications [get]
func (c *NotificationController) List(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	notifications, err := c.Service.ListForRecipient(ctx.UserContext(), claims.NIC)
	if err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(notifications)
}

func (c *NotificationController) MarkRead(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if err := c.Service.MarkRead(ctx.UserContext(), ctx.Params("id"), claims.NIC); err != nil {
		return apperr.Respond(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Notification marked as read"})
}

// HandleWebSocket keeps the connection registered until the peer goes away.
// The token travels as a query parameter because browsers cannot set headers
// on websocket upgrades.
func (c *NotificationController) HandleWebSocket(conn *websocket.Conn) {
	token := conn.Query("token")
	claims, err := utils.ValidateToken(token)
	if err != nil {
		conn.Close()
		return
	}

	c.Hub.Register(claims.NIC, conn)
	defer func() {
		c.Hub.Unregister(claims.NIC, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
