package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Seat codes combine a row number with a column letter, e.g. "7C". The grid
// is fixed at 4 columns (A-D); row count follows the trip's seat capacity.
const SeatColumns = "ABCD"

// NormalizeSeats trims, uppercases and de-duplicates seat codes while keeping
// input order.
func NormalizeSeats(seats []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(seats))
	for _, s := range seats {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// HasDuplicateSeats reports whether the raw list names a seat twice.
func HasDuplicateSeats(seats []string) bool {
	seen := map[string]bool{}
	for _, s := range seats {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if seen[s] {
			return true
		}
		seen[s] = true
	}
	return false
}

// ValidateSeatCode checks a normalized seat code against the grid for the
// given row count.
func ValidateSeatCode(code string, rows int) error {
	if len(code) < 2 {
		return fmt.Errorf("seat %q: too short", code)
	}
	col := code[len(code)-1:]
	if !strings.Contains(SeatColumns, col) {
		return fmt.Errorf("seat %q: column must be one of %s", code, SeatColumns)
	}
	row, err := strconv.Atoi(code[:len(code)-1])
	if err != nil || row < 1 {
		return fmt.Errorf("seat %q: invalid row", code)
	}
	if row > rows {
		return fmt.Errorf("seat %q: row exceeds capacity", code)
	}
	return nil
}
