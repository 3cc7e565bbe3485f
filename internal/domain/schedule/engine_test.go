package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestCompute_FullOpenDay(t *testing.T) {
	now := at(2026, 9, 1, 8, 0)
	slots := Compute(nil, day(2026, 9, 3), day(2026, 9, 3), now)

	require.Len(t, slots, 16)
	assert.True(t, slots[0].Start.Equal(at(2026, 9, 3, 9, 0)))
	assert.True(t, slots[15].Start.Equal(at(2026, 9, 3, 16, 30)))

	for _, s := range slots {
		assert.Equal(t, StatusAvailable, s.Status)
		assert.Equal(t, "Available", s.Title)
		assert.Equal(t, SlotDuration, s.End.Sub(s.Start))
	}
}

func TestCompute_MultiDayRangeIsInclusive(t *testing.T) {
	now := at(2026, 9, 1, 8, 0)
	slots := Compute(nil, day(2026, 9, 3), day(2026, 9, 5), now)
	assert.Len(t, slots, 48)
}

func TestCompute_BusyStartExcludesExactSlot(t *testing.T) {
	now := at(2026, 9, 1, 8, 0)
	busy := []Event{{
		ID:      "e1",
		Summary: "Appointment with Thandi Nkosi",
		Start:   at(2026, 9, 3, 10, 0),
		End:     at(2026, 9, 3, 10, 30),
	}}

	slots := Compute(busy, day(2026, 9, 3), day(2026, 9, 3), now)
	require.Len(t, slots, 16)

	assert.Equal(t, StatusReserved, slots[0].Status)
	assert.Equal(t, "e1", slots[0].EventID)

	for _, s := range slots[1:] {
		assert.False(t, s.Start.Equal(at(2026, 9, 3, 10, 0)),
			"taken boundary offered as available")
	}
}

func TestCompute_MisalignedBusyEventExcludesNothing(t *testing.T) {
	now := at(2026, 9, 1, 8, 0)
	busy := []Event{{
		ID:      "e2",
		Summary: "Appointment with Thandi Nkosi",
		Start:   at(2026, 9, 3, 10, 15),
		End:     at(2026, 9, 3, 10, 45),
	}}

	slots := Compute(busy, day(2026, 9, 3), day(2026, 9, 3), now)
	// Busy entry plus the untouched 16-slot grid.
	assert.Len(t, slots, 17)
}

func TestCompute_PastSlotsDropped(t *testing.T) {
	now := at(2026, 9, 3, 12, 45)
	slots := Compute(nil, day(2026, 9, 3), day(2026, 9, 3), now)

	require.NotEmpty(t, slots)
	assert.True(t, slots[0].Start.Equal(at(2026, 9, 3, 13, 0)))
	assert.Len(t, slots, 8)
}

func TestCompute_EntirelyPastDay(t *testing.T) {
	now := at(2026, 9, 4, 9, 0)
	slots := Compute(nil, day(2026, 9, 3), day(2026, 9, 3), now)
	assert.Empty(t, slots)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusBlocked, Classify("Blocked Slot"))
	assert.Equal(t, StatusReserved, Classify("Appointment with Thandi Nkosi"))
	assert.Equal(t, StatusReserved, Classify("Team meeting"))
}
