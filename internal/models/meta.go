package models

import "time"

// Meta holds the bookkeeping fields shared by every stored record.
type Meta struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
	Version   int32     `bson:"version" json:"version"`
}

// Metadata returns the record metadata
func (m *Meta) Metadata() *Meta {
	return m
}

// PaginationInfo describes one page of a listing
type PaginationInfo struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginationInfo computes the page count for total items
func NewPaginationInfo(page, perPage int, total int64) PaginationInfo {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return PaginationInfo{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
