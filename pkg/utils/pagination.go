package utils

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams extracts page/limit from the query string. Missing or
// invalid values fall back to page 1 and DefaultPageSize.
func GetPaginationParams(c echo.Context) PaginationParams {
	return NewPaginationParams(c.QueryParam("page"), c.QueryParam("limit"))
}

func NewPaginationParams(pageParam, limitParam string) PaginationParams {
	page, _ := strconv.Atoi(pageParam)
	pageSize, _ := strconv.Atoi(limitParam)

	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   Offset(page, pageSize),
	}
}

// Offset is (page-1)*pageSize, saturating at math.MaxInt so an oversized page
// lands past the end of any result set.
func Offset(page, pageSize int) int {
	if page <= 1 || pageSize <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// TotalPages is ceil(total/pageSize).
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}

// Page slices one page out of an already filtered and sorted set.
func Page[T any](items []T, limit, offset int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
