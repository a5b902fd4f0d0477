package notification

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Hub tracks live websocket connections per NIC and pushes notifications to
// whoever is online. Offline recipients still get the persisted row.
type Hub struct {
	mu     sync.RWMutex
	conns  map[string][]*websocket.Conn
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		conns:  make(map[string][]*websocket.Conn),
		logger: logger,
	}
}

func (h *Hub) Register(nic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[nic] = append(h.conns[nic], conn)
}

func (h *Hub) Unregister(nic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	remaining := h.conns[nic][:0]
	for _, c := range h.conns[nic] {
		if c != conn {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == 0 {
		delete(h.conns, nic)
	} else {
		h.conns[nic] = remaining
	}
}

// Push sends a notification to all live connections of the recipient.
func (h *Hub) Push(n Notification) {
	h.mu.RLock()
	conns := h.conns[n.RecipientNIC]
	h.mu.RUnlock()

	if len(conns) == 0 {
		return
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Debug("websocket push failed", zap.String("nic", n.RecipientNIC), zap.Error(err))
		}
	}
}
