package util

import "testing"

func TestFormatCompactSuffixes(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1_250_000_000_000, "1.25T"},
		{945_000_000, "0.95B"},
		{1_600_000, "1.60M"},
		{4_500, "4.50K"},
		{42, "42.00"},
	}
	for _, c := range cases {
		if got := FormatCompact(c.in, 2); got != c.want {
			t.Fatalf("FormatCompact(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(1800000, "AED"); got != "AED 1,800,000" {
		t.Fatalf("unexpected AED format %q", got)
	}
	if got := FormatCurrency(45.5, "USD"); got != "$45.50" {
		t.Fatalf("unexpected USD format %q", got)
	}
	if got := FormatCurrency(999, "AED"); got != "AED 999" {
		t.Fatalf("unexpected small AED format %q", got)
	}
}

func TestRound(t *testing.T) {
	if got := Round(4.379999, 2); got != 4.38 {
		t.Fatalf("Round(4.379999, 2) = %v", got)
	}
	if got := Round(1.0005, 3); got != 1.001 {
		t.Fatalf("Round(1.0005, 3) = %v", got)
	}
}

func TestSafeDivide(t *testing.T) {
	if got := SafeDivide(10, 0, -1); got != -1 {
		t.Fatalf("expected default on zero denominator, got %v", got)
	}
	if got := SafeDivide(10, 4, 0); got != 2.5 {
		t.Fatalf("SafeDivide(10, 4) = %v", got)
	}
}
