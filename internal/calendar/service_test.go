package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverpine/fleet-booking/internal/booking"
)

type fakeBookingSource struct {
	bookings []*booking.Booking
	calls    int
}

func (f *fakeBookingSource) ListForWindow(_ context.Context, resourceID string, _, _ time.Time) ([]*booking.Booking, error) {
	f.calls++
	if resourceID == "" {
		return f.bookings, nil
	}
	var out []*booking.Booking
	for _, b := range f.bookings {
		if b.ResourceID == resourceID {
			out = append(out, b)
		}
	}
	return out, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestOccurrencesGroupsBySourceBooking(t *testing.T) {
	// A occurs daily on the 1st through 3rd, B once on the 2nd. Output is
	// grouped by booking in source order, not globally sorted by date.
	a := &booking.Booking{
		ID:            "a",
		ResourceID:    "res-1",
		ResourceName:  "Van 03",
		BookingDate:   date(2025, 2, 1),
		StartTime:     9 * 60,
		EndTime:       10 * 60,
		RepeatOption:  booking.RepeatDaily,
		EndRepeatDate: datePtr(2025, 2, 3),
	}

	b := &booking.Booking{
		ID:           "b",
		ResourceID:   "res-1",
		ResourceName: "Van 03",
		BookingDate:  date(2025, 2, 2),
		StartTime:    14 * 60,
		EndTime:      15 * 60,
		RepeatOption: booking.RepeatNone,
	}

	src := &fakeBookingSource{bookings: []*booking.Booking{a, b}}
	svc := NewService(src)

	got, err := svc.Occurrences(context.Background(), Query{
		WindowStart: date(2025, 2, 1),
		WindowEnd:   date(2025, 2, 28),
	})
	require.NoError(t, err)
	require.Len(t, got, 4)

	// All of A's dates come before B's single date, even though B's date
	// falls between A's.
	assert.Equal(t, "a", got[0].BookingID)
	assert.Equal(t, "a", got[1].BookingID)
	assert.Equal(t, "a", got[2].BookingID)
	assert.Equal(t, "b", got[3].BookingID)

	assert.Equal(t, date(2025, 2, 1), got[0].Date)
	assert.Equal(t, date(2025, 2, 2), got[1].Date)
	assert.Equal(t, date(2025, 2, 3), got[2].Date)
	assert.Equal(t, date(2025, 2, 2), got[3].Date)

	// Occurrences carry the booking's label and time-of-day fields.
	assert.Equal(t, "Van 03", got[0].ResourceLabel)
	assert.Equal(t, booking.TimeOfDay(9*60), got[0].StartTime)
	assert.Equal(t, booking.TimeOfDay(10*60), got[0].EndTime)
}

func TestOccurrencesSubstitutesUnknownLabel(t *testing.T) {
	orphan := &booking.Booking{
		ID:           "orphan",
		ResourceID:   "res-gone",
		ResourceName: "", // resource row unresolved
		BookingDate:  date(2025, 2, 10),
		StartTime:    9 * 60,
		EndTime:      10 * 60,
		RepeatOption: booking.RepeatNone,
	}
	ok := &booking.Booking{
		ID:           "ok",
		ResourceID:   "res-1",
		ResourceName: "Van 03",
		BookingDate:  date(2025, 2, 11),
		StartTime:    9 * 60,
		EndTime:      10 * 60,
		RepeatOption: booking.RepeatNone,
	}

	svc := NewService(&fakeBookingSource{bookings: []*booking.Booking{orphan, ok}})

	got, err := svc.Occurrences(context.Background(), Query{
		WindowStart: date(2025, 2, 1),
		WindowEnd:   date(2025, 2, 28),
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// The broken reference gets a sentinel label; aggregation continues.
	assert.Equal(t, UnknownResourceLabel, got[0].ResourceLabel)
	assert.Equal(t, "Van 03", got[1].ResourceLabel)
}

func TestOccurrencesInvertedWindowIsEmpty(t *testing.T) {
	src := &fakeBookingSource{bookings: []*booking.Booking{{
		ID:           "a",
		ResourceID:   "res-1",
		BookingDate:  date(2025, 2, 10),
		RepeatOption: booking.RepeatNone,
	}}}
	svc := NewService(src)

	got, err := svc.Occurrences(context.Background(), Query{
		WindowStart: date(2025, 3, 1),
		WindowEnd:   date(2025, 2, 1),
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, src.calls, "inverted window must not hit storage")
}

func TestOccurrencesFiltersByResource(t *testing.T) {
	van := &booking.Booking{
		ID: "a", ResourceID: "res-1", ResourceName: "Van 03",
		BookingDate: date(2025, 2, 10), RepeatOption: booking.RepeatNone,
	}
	room := &booking.Booking{
		ID: "b", ResourceID: "res-2", ResourceName: "Room B",
		BookingDate: date(2025, 2, 10), RepeatOption: booking.RepeatNone,
	}

	svc := NewService(&fakeBookingSource{bookings: []*booking.Booking{van, room}})

	got, err := svc.Occurrences(context.Background(), Query{
		ResourceID:  "res-2",
		WindowStart: date(2025, 2, 1),
		WindowEnd:   date(2025, 2, 28),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Room B", got[0].ResourceLabel)
}
