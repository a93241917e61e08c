package services

import (
	"fmt"
	"strconv"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// ValidatePaginationParams validates and parses pagination parameters
func ValidatePaginationParams(pageStr, perPageStr string) (int, int, error) {
	page := 1
	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return 0, 0, fmt.Errorf("invalid page parameter: must be a positive integer")
		}
		page = p
	}

	perPage := defaultPerPage
	if perPageStr != "" {
		pp, err := strconv.Atoi(perPageStr)
		if err != nil || pp < 1 || pp > maxPerPage {
			return 0, 0, fmt.Errorf("invalid per_page parameter: must be between 1 and %d", maxPerPage)
		}
		perPage = pp
	}

	return page, perPage, nil
}
