package booking

import "time"

// DateOnly truncates t to midnight UTC, discarding the clock component.
// All recurrence arithmetic operates on dates normalized this way.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// ExpandOccurrences returns the dates within [windowStart, windowEnd] on
// which the booking occurs, in ascending order. An inverted window yields
// an empty result.
//
// The cursor starts at BookingDate and advances by the cadence of the
// repeat option: one day for daily, seven for weekly. Non-repeating
// bookings emit at most their own date. The iteration bound is
// min(RepeatBound, windowEnd), computed once before the loop, so expansion
// terminates regardless of cadence. The cursor is strictly increasing,
// which is what guarantees distinct output; no dedup structure is needed.
//
// DaysToRepeatOn is intentionally not consulted here: weekly bookings emit
// every 7th day from BookingDate whatever the selector says.
func ExpandOccurrences(b *Booking, windowStart, windowEnd time.Time) []time.Time {
	windowStart = DateOnly(windowStart)
	windowEnd = DateOnly(windowEnd)
	if windowStart.After(windowEnd) {
		return nil
	}

	bound := minDate(b.RepeatBound(), windowEnd)

	var dates []time.Time
	cursor := DateOnly(b.BookingDate)
	for !cursor.After(bound) {
		if !cursor.Before(windowStart) {
			dates = append(dates, cursor)
		}

		switch b.RepeatOption {
		case RepeatNone:
			return dates
		case RepeatDaily:
			cursor = cursor.AddDate(0, 0, 1)
		case RepeatWeekly:
			cursor = cursor.AddDate(0, 0, 7)
		default:
			// Unrecognized cadence: jump past the bound. This is a
			// terminating sentinel, not a real cadence; at most the first
			// in-window date has been emitted.
			cursor = bound.AddDate(0, 0, 1)
		}
	}

	return dates
}
