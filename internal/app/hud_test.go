package app

import "testing"

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{60, "1:00"},
		{59.5, "0:59"},
		{75.2, "1:15"},
		{9.99, "0:09"},
		{0, "0:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClockUrgency(t *testing.T) {
	tests := []struct {
		in   float64
		want Urgency
	}{
		{60, UrgencyNormal},
		{30.01, UrgencyNormal},
		{30, UrgencyWarning},
		{10.5, UrgencyWarning},
		{10, UrgencyCritical},
		{0, UrgencyCritical},
	}
	for _, tt := range tests {
		if got := ClockUrgency(tt.in); got != tt.want {
			t.Errorf("ClockUrgency(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHUDBeforeStart(t *testing.T) {
	g := newTestGame(t, nil)
	h := g.HUD()
	if h.Score != "Score: 0" || h.Collected != "Animals: 0/5" || h.Clock != "1:00" || h.Message != "" {
		t.Fatalf("HUD = %+v", h)
	}
}
