package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging membaca ?limit= & ?offset= (atau ?page= & ?per_page=) dan normalisasi.
// Client lama kirim limit/offset langsung; dua-duanya didukung.
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	limitStr := strings.TrimSpace(c.Query("limit"))
	offsetStr := strings.TrimSpace(c.Query("offset"))

	if limitStr != "" || offsetStr != "" {
		limit, _ := strconv.Atoi(limitStr)
		if limit <= 0 {
			limit = defaultPerPage
		}
		if maxPerPage > 0 && limit > maxPerPage {
			limit = maxPerPage
		}
		offset, _ := strconv.Atoi(offsetStr)
		if offset < 0 {
			offset = 0
		}
		return Paging{
			Page:    (offset / limit) + 1,
			PerPage: limit,
			Offset:  offset,
			Limit:   limit,
		}
	}

	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(strings.TrimSpace(c.Query("per_page", strconv.Itoa(defaultPerPage))))
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}

	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
		Limit:   perPage,
	}
}

func BuildPaginationFromOffset(total int64, offset, limit int) Pagination {
	perPage := limit
	if perPage <= 0 {
		perPage = 20 // default aman
	}
	page := (offset / perPage) + 1
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage)) // ceil
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
