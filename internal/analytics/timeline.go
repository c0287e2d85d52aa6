package analytics

import "time"

// Timeline produces the ordered calendar days from the trip start to the
// earlier of "today" and the trip end, both endpoints inclusive. It is
// empty when now falls before the trip start: no bucket ever exists for a
// day before the trip begins, and none beyond today.
func Timeline(start, end, now time.Time) []time.Time {
	first := dayOf(start)
	last := dayOf(end)
	today := dayOf(now)

	if today.Before(first) {
		return nil
	}
	if today.Before(last) {
		last = today
	}

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// TripDurationDays is the inclusive whole-day length of the trip range,
// clamped to a one-day minimum so degenerate ranges never divide by zero.
func TripDurationDays(start, end time.Time) int {
	days := int(dayOf(end).Sub(dayOf(start)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
