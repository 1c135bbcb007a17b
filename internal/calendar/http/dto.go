package http

import (
	"github.com/silverpine/fleet-booking/internal/booking"
	"github.com/silverpine/fleet-booking/internal/calendar"
)

const dateLayout = "2006-01-02"

// ListOccurrencesRequest defines query parameters for the calendar endpoint.
type ListOccurrencesRequest struct {
	Start      string `form:"start" binding:"required,datetime=2006-01-02"`
	End        string `form:"end" binding:"required,datetime=2006-01-02"`
	ResourceID string `form:"resource_id" binding:"omitempty,uuid"`
}

type OccurrenceResponse struct {
	Date          string            `json:"date"`
	BookingID     string            `json:"booking_id"`
	ResourceID    string            `json:"resource_id"`
	ResourceLabel string            `json:"resource_label"`
	StartTime     booking.TimeOfDay `json:"start_time"`
	EndTime       booking.TimeOfDay `json:"end_time"`
}

func NewOccurrenceResponse(o calendar.Occurrence) OccurrenceResponse {
	return OccurrenceResponse{
		Date:          o.Date.Format(dateLayout),
		BookingID:     o.BookingID,
		ResourceID:    o.ResourceID,
		ResourceLabel: o.ResourceLabel,
		StartTime:     o.StartTime,
		EndTime:       o.EndTime,
	}
}
