package analytics

import (
	"testing"
	"time"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestTimeline(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 1, 10)

	tests := []struct {
		name      string
		now       time.Time
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{
			name:    "now before trip start - empty",
			now:     date(2023, 12, 31),
			wantLen: 0,
		},
		{
			name:      "now on first day - single bucket",
			now:       time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
			wantLen:   1,
			wantFirst: "2024-01-01",
			wantLast:  "2024-01-01",
		},
		{
			name:      "ongoing trip - up to today inclusive",
			now:       date(2024, 1, 5),
			wantLen:   5,
			wantFirst: "2024-01-01",
			wantLast:  "2024-01-05",
		},
		{
			name:      "completed trip - up to trip end",
			now:       date(2024, 2, 20),
			wantLen:   10,
			wantFirst: "2024-01-01",
			wantLast:  "2024-01-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := Timeline(start, end, tt.now)
			if len(days) != tt.wantLen {
				t.Fatalf("Timeline() returned %d days, want %d", len(days), tt.wantLen)
			}
			if tt.wantLen == 0 {
				return
			}
			if got := DayKey(days[0]); got != tt.wantFirst {
				t.Errorf("first day = %s, want %s", got, tt.wantFirst)
			}
			if got := DayKey(days[len(days)-1]); got != tt.wantLast {
				t.Errorf("last day = %s, want %s", got, tt.wantLast)
			}
		})
	}
}

func TestTimeline_LengthProperty(t *testing.T) {
	// len(buckets) == daysBetween(start, min(now, end)) + 1 whenever now
	// is not before the trip start.
	start := date(2024, 3, 10)
	end := date(2024, 3, 25)

	for offset := 0; offset < 30; offset++ {
		now := start.AddDate(0, 0, offset)
		days := Timeline(start, end, now)

		capped := now
		if capped.After(end) {
			capped = end
		}
		want := int(capped.Sub(start).Hours()/24) + 1
		if len(days) != want {
			t.Errorf("offset %d: len = %d, want %d", offset, len(days), want)
		}
	}
}

func TestTimeline_DayOrdinalContiguous(t *testing.T) {
	days := Timeline(date(2024, 1, 1), date(2024, 1, 10), date(2024, 1, 7))
	for i := 1; i < len(days); i++ {
		if got := days[i].Sub(days[i-1]); got != 24*time.Hour {
			t.Fatalf("gap between bucket %d and %d is %v, want 24h", i-1, i, got)
		}
	}
}

func TestTripDurationDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"ten day trip inclusive", date(2024, 1, 1), date(2024, 1, 10), 10},
		{"single day trip", date(2024, 1, 1), date(2024, 1, 1), 1},
		{"inverted range clamps to one", date(2024, 1, 10), date(2024, 1, 1), 1},
		{"across month boundary", date(2024, 1, 30), date(2024, 2, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TripDurationDays(tt.start, tt.end); got != tt.want {
				t.Errorf("TripDurationDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDayKey_TruncatesTimeOfDay(t *testing.T) {
	late := time.Date(2024, 7, 14, 23, 59, 59, 0, time.UTC)
	if got := DayKey(late); got != "2024-07-14" {
		t.Errorf("DayKey() = %s, want 2024-07-14", got)
	}
}
