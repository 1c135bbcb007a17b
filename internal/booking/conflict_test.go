package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasConflict(t *testing.T) {
	mustTime := func(s string) TimeOfDay {
		t.Helper()
		v, err := ParseTimeOfDay(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return v
	}

	existing := []*Booking{
		{
			ResourceID:  "res-x",
			BookingDate: date(2025, 2, 5),
			StartTime:   mustTime("10:00"),
			EndTime:     mustTime("12:00"),
		},
	}

	candidate := func(resourceID string, d time.Time, start, end string) *Booking {
		return &Booking{
			ResourceID:  resourceID,
			BookingDate: d,
			StartTime:   mustTime(start),
			EndTime:     mustTime(end),
		}
	}

	tests := []struct {
		name      string
		candidate *Booking
		want      bool
	}{
		{
			name:      "overlapping window on same resource and date conflicts",
			candidate: candidate("res-x", date(2025, 2, 5), "11:00", "13:00"),
			want:      true,
		},
		{
			name:      "abutting window does not conflict",
			candidate: candidate("res-x", date(2025, 2, 5), "12:00", "13:00"),
			want:      false,
		},
		{
			name:      "abutting before does not conflict",
			candidate: candidate("res-x", date(2025, 2, 5), "09:00", "10:00"),
			want:      false,
		},
		{
			name:      "contained window conflicts",
			candidate: candidate("res-x", date(2025, 2, 5), "10:30", "11:30"),
			want:      true,
		},
		{
			name:      "same time on different resource does not conflict",
			candidate: candidate("res-y", date(2025, 2, 5), "11:00", "13:00"),
			want:      false,
		},
		{
			name:      "same time on different date does not conflict",
			candidate: candidate("res-x", date(2025, 2, 6), "11:00", "13:00"),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(tt.candidate, existing))
		})
	}
}

func TestHasConflictEmptyExisting(t *testing.T) {
	c := &Booking{ResourceID: "res-x", BookingDate: date(2025, 2, 5), StartTime: 600, EndTime: 720}
	assert.False(t, HasConflict(c, nil))
}

func TestHasConflictIgnoresRecurrenceOfExisting(t *testing.T) {
	// A weekly booking's later occurrences are not expanded by the conflict
	// check; only its stored booking date counts.
	weekly := []*Booking{
		{
			ResourceID:    "res-x",
			BookingDate:   date(2025, 2, 5),
			StartTime:     600, // 10:00
			EndTime:       720, // 12:00
			RepeatOption:  RepeatWeekly,
			EndRepeatDate: datePtr(2025, 3, 31),
		},
	}

	// Lands on the weekly booking's next occurrence date (2025-02-12).
	c := &Booking{ResourceID: "res-x", BookingDate: date(2025, 2, 12), StartTime: 600, EndTime: 720}
	assert.False(t, HasConflict(c, weekly))
}
