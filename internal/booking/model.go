package booking

import (
	"net/http"
	"time"

	"github.com/silverpine/fleet-booking/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict        = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange    = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidRepeatOption = apperror.New(http.StatusBadRequest, "invalid repeat option")
	ErrInvalidRepeatRange  = apperror.New(http.StatusBadRequest, "end repeat date cannot be before booking date")
	ErrRepeatDateNotNeeded = apperror.New(http.StatusBadRequest, "end repeat date requires a repeat option")
	ErrResourceNotFound    = apperror.New(http.StatusNotFound, "resource not found")
)

// RepeatOption is the recurrence cadence of a booking. It is a closed set;
// values outside it are treated by the expander as a terminating sentinel,
// never as a cadence.
type RepeatOption string

const (
	RepeatNone   RepeatOption = "none"
	RepeatDaily  RepeatOption = "daily"
	RepeatWeekly RepeatOption = "weekly"
)

// Valid reports whether r is one of the known repeat options.
func (r RepeatOption) Valid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly:
		return true
	}
	return false
}

// Booking reserves a resource for a time-of-day window on BookingDate,
// optionally repeating until EndRepeatDate.
type Booking struct {
	ID            string
	ResourceID    string
	ResourceName  string // joined from resources; empty when the reference is unresolved
	UserID        string
	UserName      string
	BookingDate   time.Time // date only, midnight UTC
	StartTime     TimeOfDay
	EndTime       TimeOfDay
	RepeatOption  RepeatOption
	EndRepeatDate *time.Time // date only; set only when RepeatOption != none
	// DaysToRepeatOn is a comma-separated weekday selector for weekly
	// bookings. It is stored and returned but not consulted by occurrence
	// expansion: every 7th day from BookingDate is emitted regardless.
	DaysToRepeatOn *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RepeatBound is the latest date the booking's recurrence may produce an
// occurrence: EndRepeatDate when set, otherwise BookingDate.
func (b *Booking) RepeatBound() time.Time {
	if b.EndRepeatDate != nil {
		return DateOnly(*b.EndRepeatDate)
	}
	return DateOnly(b.BookingDate)
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID     string
	ResourceID string
	DateFrom   *time.Time // bookings whose repeat span ends on or after this date
	DateTo     *time.Time // bookings whose own date is on or before this date
	Page       int
	PageSize   int
}
