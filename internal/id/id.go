package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEntryID returns a ledger entry ID like "2025-001".
func FormatEntryID(year, seq int) string {
	return fmt.Sprintf("%04d-%03d", year, seq)
}

// ParseEntryID parses "2025-001" into year and seq.
func ParseEntryID(id string) (year, seq int, err error) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid entry ID format: %q", id)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in entry ID %q: %w", id, err)
	}

	seq, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sequence in entry ID %q: %w", id, err)
	}

	return year, seq, nil
}
