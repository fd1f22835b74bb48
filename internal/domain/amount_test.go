package domain

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        int64
		expectError bool
	}{
		{name: "two decimals", input: "12.34", want: 1234},
		{name: "one decimal", input: "0.5", want: 50},
		{name: "whole number", input: "7", want: 700},
		{name: "zero", input: "0", want: 0},
		{name: "trailing zeros", input: "3.10", want: 310},
		{name: "negative passes parsing", input: "-5", want: -500},
		{name: "three decimals rejected", input: "1.234", expectError: true},
		{name: "not a number", input: "abc", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)

			if tt.expectError {
				if err != ErrMalformedAmount {
					t.Fatalf("expected ErrMalformedAmount, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("expected %d minor units, got %d", tt.want, got)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{minor: 1234, want: "12.34"},
		{minor: 50, want: "0.50"},
		{minor: 700, want: "7.00"},
		{minor: 0, want: "0.00"},
		{minor: 5, want: "0.05"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.minor); got != tt.want {
			t.Errorf("FormatAmount(%d): expected %q, got %q", tt.minor, tt.want, got)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"0.01", "10.00", "999.99"} {
		minor, err := ParseAmount(s)
		if err != nil {
			t.Fatalf("ParseAmount(%q) failed: %v", s, err)
		}
		if got := FormatAmount(minor); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}
