package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deskline/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{
			name:         "valid values - no adjustment needed",
			page:         2,
			pageSize:     10,
			wantPage:     2,
			wantPageSize: 10,
		},
		{
			name:         "page less than 1 - defaults to DefaultPage",
			page:         0,
			pageSize:     10,
			wantPage:     constants.DefaultPage,
			wantPageSize: 10,
		},
		{
			name:         "negative page - defaults to DefaultPage",
			page:         -3,
			pageSize:     10,
			wantPage:     constants.DefaultPage,
			wantPageSize: 10,
		},
		{
			name:         "pageSize less than 1 - defaults to TicketPageSize",
			page:         1,
			pageSize:     0,
			wantPage:     1,
			wantPageSize: constants.TicketPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{name: "zero records still one page", total: 0, pageSize: 10, want: 1},
		{name: "exact multiple", total: 30, pageSize: 10, want: 3},
		{name: "partial last page", total: 31, pageSize: 10, want: 4},
		{name: "single record", total: 1, pageSize: 10, want: 1},
		{name: "one below boundary", total: 9, pageSize: 10, want: 1},
		{name: "boundary", total: 10, pageSize: 10, want: 1},
		{name: "one above boundary", total: 11, pageSize: 10, want: 2},
		{name: "negative total treated as empty", total: -5, pageSize: 10, want: 1},
		{name: "zero page size guarded", total: 50, pageSize: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int64
		want  int
	}{
		{name: "within range", page: 2, total: 35, want: 2},
		{name: "below range", page: 0, total: 35, want: 1},
		{name: "above range", page: 9, total: 35, want: 4},
		{name: "empty list clamps to first page", page: 5, total: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPage(tt.page, tt.total, constants.TicketPageSize))
		})
	}
}
