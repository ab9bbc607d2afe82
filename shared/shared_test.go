package shared_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gakiokevin/myhotel/shared"
	"github.com/gakiokevin/myhotel/shared/constant"
	"github.com/gakiokevin/myhotel/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "1", input: "1", expected: boolPtr(true)},
		{name: "0", input: "0", expected: boolPtr(false)},
		{name: "TRUE", input: "TRUE", expected: boolPtr(true)},
		{name: "garbage returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Errorf("expected %v, got nil", *tt.expected)
			} else if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomUpdate struct {
		RoomNumber string `db:"room_number"`
		Status     string `db:"status"`
		Floor      int    `db:"floor"`
		Internal   string
	}

	t.Run("zero values and untagged fields are skipped", func(t *testing.T) {
		result := shared.TransformFields(roomUpdate{Status: "Maintenance", Internal: "skip me"}, "test-user-id")

		if result["status"] != "Maintenance" {
			t.Errorf("expected status to be Maintenance, got %v", result["status"])
		}

		for _, key := range []string{"room_number", "floor", "Internal"} {
			if _, exists := result[key]; exists {
				t.Errorf("unexpected field %s in result", key)
			}
		}
	})

	t.Run("modified metadata is always stamped", func(t *testing.T) {
		result := shared.TransformFields(roomUpdate{}, "test-user-id")

		if result[constant.FieldModifiedBy] != "test-user-id" {
			t.Errorf("expected modified_by to be test-user-id, got %v", result[constant.FieldModifiedBy])
		}

		if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
			t.Error("expected modified_at to be a time.Time")
		}
	})

	t.Run("non-nil pointer to zero value is kept", func(t *testing.T) {
		type update struct {
			Floor *int `db:"floor"`
		}

		floor := 0
		result := shared.TransformFields(update{Floor: &floor}, "test-user-id")

		if !reflect.DeepEqual(result["floor"], &floor) {
			t.Errorf("expected floor pointer to be kept, got %v", result["floor"])
		}
	})
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(int64(42), "id", "bookings")

	if len(result.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(result.Filters))
	}

	filter, ok := result.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be of type dto.Filter")
	}

	if filter.Field != "id" {
		t.Errorf("expected field to be id, got %s", filter.Field)
	}

	if filter.Value != int64(42) {
		t.Errorf("expected value to be 42, got %v", filter.Value)
	}

	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected operator to be %s, got %s", dto.FilterOperatorEq, filter.Operator)
	}

	if filter.Table != "bookings" {
		t.Errorf("expected table to be bookings, got %s", filter.Table)
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("room", "get", "42")
	if key != "room:get:42" {
		t.Errorf("expected room:get:42, got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "id", SortDir: "desc"}

	filtered := shared.BuildCacheKeyWithQuery("room:gets", params, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "status", Value: "Available", Operator: dto.FilterOperatorEq, Table: "rooms"},
		},
	})
	unfiltered := shared.BuildCacheKeyWithQuery("room:gets", params, dto.FilterGroup{})

	if !strings.HasPrefix(filtered, "room:gets:p2:l10") {
		t.Errorf("expected key to start with room:gets:p2:l10, got %s", filtered)
	}

	if filtered == unfiltered {
		t.Error("expected distinct keys for distinct filters")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
