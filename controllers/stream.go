// controllers/stream.go
package controllers

import (
	"io"

	"github.com/gin-gonic/gin"
)

// StreamSchedule pushes appointment change events to the staff dashboard as
// server-sent events. Events are advisory: the dashboard re-fetches the
// schedule when one arrives instead of patching local state.
func (ac *AppointmentController) StreamSchedule(c *gin.Context) {
	if ac.Hub == nil {
		c.AbortWithStatusJSON(503, gin.H{"error": "Live updates unavailable"})
		return
	}

	events, unsubscribe := ac.Hub.Subscribe()
	defer unsubscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("appointment", ev)
			return true
		}
	})
}
