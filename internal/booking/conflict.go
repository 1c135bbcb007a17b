package booking

// HasConflict reports whether the candidate's time window collides with any
// of the existing bookings. Two bookings conflict when they reserve the same
// resource on the same stored booking date and their time-of-day intervals
// overlap. Intervals are half-open: back-to-back bookings where one ends
// exactly when the other starts do not conflict.
//
// Only the stored BookingDate of each existing booking is compared; later
// occurrences of a repeating booking are not expanded here.
func HasConflict(candidate *Booking, existing []*Booking) bool {
	candidateDate := DateOnly(candidate.BookingDate)

	for _, b := range existing {
		if b.ResourceID != candidate.ResourceID {
			continue
		}
		if !DateOnly(b.BookingDate).Equal(candidateDate) {
			continue
		}
		if b.StartTime.Before(candidate.EndTime) && candidate.StartTime.Before(b.EndTime) {
			return true
		}
	}
	return false
}
