package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/refresh"
)

const keepAliveInterval = 25 * time.Second

// EventHandler streams refresh signals to the client over SSE
type EventHandler struct {
	bus       *refresh.Bus
	keepAlive time.Duration
}

func NewEventHandler(bus *refresh.Bus) *EventHandler {
	return &EventHandler{
		bus:       bus,
		keepAlive: keepAliveInterval,
	}
}

// Stream sends a "refresh" event after every mutation by the same account
// and a "ping" event while idle
func (h *EventHandler) Stream(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}
	if h.bus == nil {
		apierrors.ServiceUnavailable(c, "")
		return
	}

	ch := h.bus.Subscribe(accountID)
	defer h.bus.Unsubscribe(accountID, ch)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.SSEvent("ready", gin.H{"accountId": accountID})
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case e, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent("refresh", e)
			return true
		case <-ticker.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})
}
