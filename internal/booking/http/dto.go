package http

import (
	"time"

	"github.com/silverpine/fleet-booking/internal/booking"
	"github.com/silverpine/fleet-booking/internal/pkg/request"
	resHttp "github.com/silverpine/fleet-booking/internal/resource/http"
	userHttp "github.com/silverpine/fleet-booking/internal/user/http"
)

const dateLayout = "2006-01-02"

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	ResourceID string `form:"resource_id" binding:"omitempty,uuid"`
	UserID     string `form:"user_id" binding:"omitempty,uuid"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

type BookingResponse struct {
	ID             string              `json:"id"`
	Resource       resHttp.ResourceTag `json:"resource"`
	User           userHttp.UserTag    `json:"user"`
	BookingDate    string              `json:"booking_date"`
	StartTime      booking.TimeOfDay   `json:"start_time"`
	EndTime        booking.TimeOfDay   `json:"end_time"`
	RepeatOption   string              `json:"repeat_option"`
	EndRepeatDate  *string             `json:"end_repeat_date"`
	DaysToRepeatOn *string             `json:"days_to_repeat_on"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	var endRepeat *string
	if b.EndRepeatDate != nil {
		s := b.EndRepeatDate.Format(dateLayout)
		endRepeat = &s
	}

	return BookingResponse{
		ID:             b.ID,
		Resource:       resHttp.ResourceTag{ID: b.ResourceID, Name: b.ResourceName},
		User:           userHttp.UserTag{ID: b.UserID, Name: b.UserName},
		BookingDate:    b.BookingDate.Format(dateLayout),
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		RepeatOption:   string(b.RepeatOption),
		EndRepeatDate:  endRepeat,
		DaysToRepeatOn: b.DaysToRepeatOn,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	ResourceID     string  `json:"resource_id" binding:"required,uuid"`
	BookingDate    string  `json:"booking_date" binding:"required,datetime=2006-01-02"`
	StartTime      string  `json:"start_time" binding:"required"`
	EndTime        string  `json:"end_time" binding:"required"`
	RepeatOption   string  `json:"repeat_option" binding:"omitempty,oneof=none daily weekly"`
	EndRepeatDate  *string `json:"end_repeat_date" binding:"omitempty,datetime=2006-01-02"`
	DaysToRepeatOn *string `json:"days_to_repeat_on"`
}

// ToCreateRequest parses the body into a service-level request. Binding has
// already validated the date formats; times are parsed here.
func (r *CreateBookingRequest) ToCreateRequest(userID string) (booking.CreateRequest, error) {
	start, err := booking.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	end, err := booking.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return booking.CreateRequest{}, err
	}

	bookingDate, err := time.Parse(dateLayout, r.BookingDate)
	if err != nil {
		return booking.CreateRequest{}, err
	}

	var endRepeat *time.Time
	if r.EndRepeatDate != nil {
		d, err := time.Parse(dateLayout, *r.EndRepeatDate)
		if err != nil {
			return booking.CreateRequest{}, err
		}
		endRepeat = &d
	}

	return booking.CreateRequest{
		UserID:         userID,
		ResourceID:     r.ResourceID,
		BookingDate:    bookingDate,
		StartTime:      start,
		EndTime:        end,
		RepeatOption:   booking.RepeatOption(r.RepeatOption),
		EndRepeatDate:  endRepeat,
		DaysToRepeatOn: r.DaysToRepeatOn,
	}, nil
}
