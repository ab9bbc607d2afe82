package receipt_test

import (
	"testing"
	"time"

	"github.com/gakiokevin/myhotel/shared/receipt"
)

func TestNumber(t *testing.T) {
	date := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		id       int64
		date     time.Time
		expected string
	}{
		{
			name:     "booking id stamped with date",
			id:       42,
			date:     date,
			expected: "RCT-20240115-42",
		},
		{
			name:     "single digit id",
			id:       5,
			date:     date,
			expected: "RCT-20240115-5",
		},
		{
			name:     "large id",
			id:       9000001,
			date:     date,
			expected: "RCT-20240115-9000001",
		},
		{
			name:     "month and day are zero padded",
			id:       7,
			date:     time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			expected: "RCT-20240304-7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := receipt.Number(tt.id, tt.date)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestNumber_Reproducible(t *testing.T) {
	date := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	first := receipt.Number(101, date)
	second := receipt.Number(101, date)

	if first != second {
		t.Errorf("expected identical receipt numbers, got %s and %s", first, second)
	}
}

func TestNumber_DistinctIDsNeverCollide(t *testing.T) {
	date := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	seen := map[string]int64{}

	for id := int64(1); id <= 100; id++ {
		number := receipt.Number(id, date)
		if other, ok := seen[number]; ok {
			t.Fatalf("receipt number %s generated for both id %d and id %d", number, other, id)
		}
		seen[number] = id
	}
}
