package calendar

import (
	"context"
	"time"

	"github.com/silverpine/fleet-booking/internal/booking"
)

// UnknownResourceLabel is substituted when a booking's resource reference
// cannot be resolved. The occurrence still appears so one broken reference
// does not empty the whole calendar.
const UnknownResourceLabel = "Unknown"

// Occurrence is one concrete calendar-date instance of a booking. It has no
// identity of its own; occurrences are recomputed on every query and never
// persisted.
type Occurrence struct {
	Date          time.Time
	BookingID     string
	ResourceID    string
	ResourceLabel string
	StartTime     booking.TimeOfDay
	EndTime       booking.TimeOfDay
}

// Query bounds an occurrence listing. An empty ResourceID matches all
// resources.
type Query struct {
	ResourceID  string
	WindowStart time.Time
	WindowEnd   time.Time
}

// BookingSource supplies the bookings whose repeat span could intersect a
// date window. booking.Repository satisfies it.
type BookingSource interface {
	ListForWindow(ctx context.Context, resourceID string, windowStart, windowEnd time.Time) ([]*booking.Booking, error)
}

type Service interface {
	Occurrences(ctx context.Context, q Query) ([]Occurrence, error)
}

type service struct {
	bookings BookingSource
}

func NewService(bookings BookingSource) Service {
	return &service{bookings: bookings}
}

// Occurrences expands every booking intersecting the window and flattens
// the results. Output is grouped by source booking in storage order, with
// each booking's dates ascending; it is not globally sorted by date, and
// two bookings landing on the same date both appear.
func (s *service) Occurrences(ctx context.Context, q Query) ([]Occurrence, error) {
	occurrences := make([]Occurrence, 0)

	// An inverted window is not an error; it simply contains no dates.
	if q.WindowStart.After(q.WindowEnd) {
		return occurrences, nil
	}

	bookings, err := s.bookings.ListForWindow(ctx, q.ResourceID, q.WindowStart, q.WindowEnd)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		label := b.ResourceName
		if label == "" {
			label = UnknownResourceLabel
		}

		for _, date := range booking.ExpandOccurrences(b, q.WindowStart, q.WindowEnd) {
			occurrences = append(occurrences, Occurrence{
				Date:          date,
				BookingID:     b.ID,
				ResourceID:    b.ResourceID,
				ResourceLabel: label,
				StartTime:     b.StartTime,
				EndTime:       b.EndTime,
			})
		}
	}

	return occurrences, nil
}
