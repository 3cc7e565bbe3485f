package dto

import (
	"time"

	"github.com/mwangie/CareToCrown/internal/domain/schedule"
)

// CalendarEventDTO is the FullCalendar event shape the booking UI
// renders directly.
type CalendarEventDTO struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`

	ExtendedProps ExtendedPropsDTO `json:"extendedProps"`
}

type ExtendedPropsDTO struct {
	Status string `json:"status"`
}

func FromSlot(s schedule.Slot) CalendarEventDTO {
	return CalendarEventDTO{
		ID:    s.EventID,
		Title: s.Title,
		Start: s.Start.Format(time.RFC3339),
		End:   s.End.Format(time.RFC3339),
		ExtendedProps: ExtendedPropsDTO{
			Status: string(s.Status),
		},
	}
}

func FromSlots(slots []schedule.Slot) []CalendarEventDTO {
	out := make([]CalendarEventDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromSlot(s))
	}
	return out
}
