package schedule

import "time"

// Daily booking window: half-open [09:00, 17:00) at 30-minute steps,
// 16 candidate slots per day.
const (
	WindowStartHour = 9
	WindowEndHour   = 17

	SlotDuration = 30 * time.Minute
)

// Compute derives the bookable grid for every calendar day in
// [rangeStart, rangeEnd] inclusive. Busy events come first, reclassified
// by summary, then the available slots in day-major order.
//
// A boundary is taken only when a busy event starts at exactly that
// instant; busy events that are not aligned to a 30-minute boundary
// exclude nothing. Interval overlap is intentionally not considered —
// that mirrors how the calendar is written to (every event we create is
// boundary-aligned) and is a known limitation for events created out of
// band.
//
// Pure function of its inputs: no clock reads, no I/O, no errors.
func Compute(busy []Event, rangeStart, rangeEnd, now time.Time) []Slot {
	loc := rangeStart.Location()

	taken := make(map[int64]struct{}, len(busy))
	slots := make([]Slot, 0, len(busy)+16)

	for _, ev := range busy {
		taken[ev.Start.Unix()] = struct{}{}
		slots = append(slots, Slot{
			EventID: ev.ID,
			Title:   ev.Summary,
			Start:   ev.Start,
			End:     ev.End,
			Status:  Classify(ev.Summary),
		})
	}

	day := time.Date(rangeStart.Year(), rangeStart.Month(), rangeStart.Day(), 0, 0, 0, 0, loc)
	last := time.Date(rangeEnd.Year(), rangeEnd.Month(), rangeEnd.Day(), 0, 0, 0, 0, loc)

	for ; !day.After(last); day = day.AddDate(0, 0, 1) {
		for hour := WindowStartHour; hour < WindowEndHour; hour++ {
			for minute := 0; minute < 60; minute += 30 {
				start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)

				if start.Before(now) {
					continue
				}
				if _, booked := taken[start.Unix()]; booked {
					continue
				}

				slots = append(slots, Slot{
					Title:  "Available",
					Start:  start,
					End:    start.Add(SlotDuration),
					Status: StatusAvailable,
				})
			}
		}
	}

	return slots
}
