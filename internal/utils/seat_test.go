package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeSeats_TrimUpperDedupe(t *testing.T) {
	got := NormalizeSeats([]string{" 1a", "1A", "", "10d ", "3C"})
	want := []string{"1A", "10D", "3C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestHasDuplicateSeats(t *testing.T) {
	if HasDuplicateSeats([]string{"1A", "2B"}) {
		t.Fatalf("distinct seats flagged as duplicate")
	}
	if !HasDuplicateSeats([]string{"1A", " 1a "}) {
		t.Fatalf("case/space variant duplicate not detected")
	}
}

func TestValidateSeatCode(t *testing.T) {
	cases := []struct {
		code  string
		rows  int
		valid bool
	}{
		{"1A", 10, true},
		{"10D", 10, true},
		{"11A", 10, false},
		{"0A", 10, false},
		{"5E", 10, false},
		{"A", 10, false},
		{"7C", 10, true},
	}
	for _, tc := range cases {
		err := ValidateSeatCode(tc.code, tc.rows)
		if tc.valid && err != nil {
			t.Fatalf("seat %q rows=%d: unexpected error %v", tc.code, tc.rows, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("seat %q rows=%d: expected error", tc.code, tc.rows)
		}
	}
}
