package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/silverpine/fleet-booking/internal/calendar"
	"github.com/silverpine/fleet-booking/internal/pkg/response"
)

type Handler struct {
	service calendar.Service
}

func NewHandler(service calendar.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListOccurrences(c *gin.Context) {
	var q ListOccurrencesRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	// Formats are already validated by binding.
	start, _ := time.Parse(dateLayout, q.Start)
	end, _ := time.Parse(dateLayout, q.End)

	occurrences, err := h.service.Occurrences(c.Request.Context(), calendar.Query{
		ResourceID:  q.ResourceID,
		WindowStart: start,
		WindowEnd:   end,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]OccurrenceResponse, len(occurrences))
	for i, o := range occurrences {
		items[i] = NewOccurrenceResponse(o)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
