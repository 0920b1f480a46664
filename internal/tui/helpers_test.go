package tui

import (
	"testing"
	"time"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{5000, "₹5,000"},
		{12500, "₹12,500"},
		{1250000, "₹1,250,000"},
		{12500.75, "₹12,500"},
	}
	for _, tc := range tests {
		if got := formatPrice(tc.v); got != tc.want {
			t.Errorf("formatPrice(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFormatDays(t *testing.T) {
	if got := formatDays(1); got != "1 day" {
		t.Errorf("formatDays(1) = %q, want '1 day'", got)
	}
	if got := formatDays(7); got != "7 days" {
		t.Errorf("formatDays(7) = %q, want '7 days'", got)
	}
}

func TestFormatTimeRelative(t *testing.T) {
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{10 * time.Minute, "10m ago"},
		{3 * time.Hour, "3h ago"},
		{48 * time.Hour, "2d ago"},
	}
	for _, tc := range tests {
		got := formatTime(time.Now().Add(-tc.ago))
		if got != tc.want {
			t.Errorf("formatTime(now-%v) = %q, want %q", tc.ago, got, tc.want)
		}
	}
}

func TestFormatDateZero(t *testing.T) {
	if got := formatDate(time.Time{}); got != "-" {
		t.Errorf("formatDate(zero) = %q, want '-'", got)
	}
}
