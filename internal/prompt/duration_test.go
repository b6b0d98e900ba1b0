package prompt

import (
	"strings"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		millis float64
		want   string
	}{
		{0, "0.00s"},
		{55, "0.06s"},
		{100, "0.10s"},
		{990, "0.99s"},
		{1000, "1.00s"},
		{9990, "9.99s"},
		{9999, "10.0s"},
		{10000, "10.0s"},
		{59900, "59.9s"},
		{59999, "1.00m"},
		{60000, "1.00m"},
		{9.99 * 60 * 1000, "9.99m"},
		{10 * 60 * 1000, "10.0m"},
		{59.9 * 60 * 1000, "59.9m"},
		{60 * 60 * 1000, "60.0m"},
		{99.9 * 60 * 1000, "99.9m"},
		{5999999, "100m"},
		{100 * 60 * 1000, "100m"},
		{999.9 * 60 * 1000, "1000m"},
		{7 * 24 * 60 * 60 * 1000, "10080m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.millis); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.millis, got, tt.want)
		}
	}
}

func TestFormatDuration_Total(t *testing.T) {
	t.Parallel()

	// Every input lands in exactly one band and never shows a band's limit.
	for millis := 0.0; millis < 7_000_000; millis += 997 {
		got := FormatDuration(millis)
		switch {
		case strings.HasSuffix(got, "s"), strings.HasSuffix(got, "m"):
		default:
			t.Fatalf("FormatDuration(%v) = %q: missing unit", millis, got)
		}
		for _, bad := range []string{"10.00s", "60.0s", "10.00m", "100.0m"} {
			if got == bad {
				t.Fatalf("FormatDuration(%v) = %q: shown at a band limit", millis, got)
			}
		}
	}
}
