package postgres

import "testing"

func TestHoursToMinutes(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  int
	}{
		{"quarter hour", 0.25, 15},
		{"hour and a quarter", 1.25, 75},
		{"ninety minutes", 1.5, 90},
		{"whole hours", 2, 120},
		{"sub-minute noise rounds away", 1.251, 75},
		{"short session rounds up to one minute", 0.01, 1},
		{"below half a minute rounds to zero", 0.008, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hoursToMinutes(tt.hours); got != tt.want {
				t.Errorf("hoursToMinutes(%v) = %d, want %d", tt.hours, got, tt.want)
			}
		})
	}
}

func TestMinutesToHours(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{15, 0.25},
		{75, 1.25},
		{90, 1.5},
		{60, 1},
	}

	for _, tt := range tests {
		if got := minutesToHours(tt.minutes); got != tt.want {
			t.Errorf("minutesToHours(%d) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}

// Whole-minute durations must survive store-then-load unchanged: the
// row keeps minutes, the model keeps hours, and converting back and
// forth is lossless for anything the database would accept.
func TestDurationRoundTripsThroughMinutes(t *testing.T) {
	for minutes := 1; minutes <= 600; minutes++ {
		hours := minutesToHours(minutes)
		if got := hoursToMinutes(hours); got != minutes {
			t.Fatalf("round trip %d min -> %v h -> %d min", minutes, hours, got)
		}
	}

	if got := minutesToHours(hoursToMinutes(1.25)); got != 1.25 {
		t.Errorf("1.25h round trip = %v, want 1.25", got)
	}
}
