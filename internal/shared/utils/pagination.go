package utils

import "deskline/internal/shared/constants"

// Pagination holds normalized pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ValidatePagination validates and normalizes pagination parameters.
// Page defaults to DefaultPage if less than 1.
// PageSize defaults to TicketPageSize if less than 1.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.TicketPageSize
	}
	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ClampPage confines page to [1, TotalPages(total, pageSize)] so an
// out-of-range request can never address a nonexistent page.
func ClampPage(page int, total int64, pageSize int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(total, pageSize); page > max {
		return max
	}
	return page
}

// TotalPages calculates total pages for a given total count, minimum 1.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		return 1
	}
	return pages
}
