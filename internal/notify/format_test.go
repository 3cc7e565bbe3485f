package notify

import (
	"fmt"
	"testing"
	"time"
)

// Every day a month can hold, against the full suffix table. 11, 12 and
// 13 must come out "th", not "st"/"nd"/"rd".
func TestOrdinalSuffix_AllDays(t *testing.T) {
	expected := map[int]string{
		1: "st", 21: "st", 31: "st",
		2: "nd", 22: "nd",
		3: "rd", 23: "rd",
		11: "th", 12: "th", 13: "th",
	}

	for day := 1; day <= 31; day++ {
		want, ok := expected[day]
		if !ok {
			want = "th"
		}
		if got := ordinalSuffix(day); got != want {
			t.Errorf("day %d: got %q, want %q", day, got, want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	cases := []struct {
		t    time.Time
		want string
	}{
		{time.Date(2026, time.September, 3, 10, 30, 0, 0, time.UTC), "3rd September 2026, 10:30 AM"},
		{time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC), "1st January 2026, 9:00 AM"},
		{time.Date(2026, time.March, 22, 14, 30, 0, 0, time.UTC), "22nd March 2026, 2:30 PM"},
		{time.Date(2026, time.June, 11, 16, 30, 0, 0, time.UTC), "11th June 2026, 4:30 PM"},
		{time.Date(2026, time.June, 13, 12, 0, 0, 0, time.UTC), "13th June 2026, 12:00 PM"},
		{time.Date(2026, time.October, 31, 0, 15, 0, 0, time.UTC), "31st October 2026, 12:15 AM"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatDateTime(tc.t); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatDateTime_SuffixNeverMangled(t *testing.T) {
	for day := 1; day <= 28; day++ {
		ts := time.Date(2026, time.February, day, 11, 0, 0, 0, time.UTC)
		want := fmt.Sprintf("%d%s February 2026, 11:00 AM", day, ordinalSuffix(day))
		if got := FormatDateTime(ts); got != want {
			t.Errorf("day %d: got %q, want %q", day, got, want)
		}
	}
}
