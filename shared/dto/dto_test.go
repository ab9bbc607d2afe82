package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gakiokevin/myhotel/shared/constant"
	"github.com/gakiokevin/myhotel/shared/dto"
	"github.com/gakiokevin/myhotel/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	if metadata.CreatedAt != createdAt.Format(constant.DateFormat) {
		t.Errorf("unexpected CreatedAt: %s", metadata.CreatedAt)
	}

	if metadata.ModifiedAt != modifiedAt.Format(constant.DateFormat) {
		t.Errorf("unexpected ModifiedAt: %s", metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" || metadata.ModifiedBy != "modifier" {
		t.Errorf("unexpected actors: %s / %s", metadata.CreatedBy, metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "room_number",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "room_number", SortDir: "ASC"},
		},
		{
			name:           "defaults applied when requested",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "invalid values are ignored",
			queryParams: map[string]string{
				"page":     "zero",
				"limit":    "-1",
				"sort_dir": "sideways",
			},
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	t.Run("eq", func(t *testing.T) {
		filter := dto.Filter{Field: "status", Value: "Available", Operator: dto.FilterOperatorEq, Table: "rooms"}

		where, args := filter.GetWhereClause()

		if where != "rooms.status = :status" {
			t.Errorf("unexpected where clause: %s", where)
		}

		if args["status"] != "Available" {
			t.Errorf("unexpected args: %+v", args)
		}
	})

	t.Run("like wraps the value in wildcards", func(t *testing.T) {
		filter := dto.Filter{Field: "first_name", Value: "jan", Operator: dto.FilterOperatorLike}

		_, args := filter.GetWhereClause()

		if args["first_name"] != "%jan%" {
			t.Errorf("unexpected args: %+v", args)
		}
	})

	t.Run("in expands slice values", func(t *testing.T) {
		filter := dto.Filter{Field: "status", Value: []string{"Pending", "Checked-in"}, Operator: dto.FilterOperatorIn}

		where, args := filter.GetWhereClause()

		if where != "status IN (:status_0, :status_1) " {
			t.Errorf("unexpected where clause: %s", where)
		}

		if args["status_0"] != "Pending" || args["status_1"] != "Checked-in" {
			t.Errorf("unexpected args: %+v", args)
		}
	})
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields no clause", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, _ := group.GetWhereClause()

		if where != "" {
			t.Errorf("expected empty clause, got %s", where)
		}
	})

	t.Run("filters join with the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "status", Value: "Checked-in", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "room_id", Value: int64(2), Operator: dto.FilterOperatorEq},
			},
		}

		where, args := group.GetWhereClause()

		if where != "(status = :status AND room_id = :room_id)" {
			t.Errorf("unexpected where clause: %s", where)
		}

		if len(args) != 2 {
			t.Errorf("expected 2 args, got %d", len(args))
		}
	})
}
