package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, query string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	target := "/"
	if query != "" {
		target += "?" + query
	}
	_, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	return got
}

func TestResolvePaging_LimitOffset(t *testing.T) {
	paging := resolveFor(t, "limit=50&offset=100", 100, 365)

	assert.Equal(t, 50, paging.Limit)
	assert.Equal(t, 100, paging.Offset)
	assert.Equal(t, 3, paging.Page)
}

func TestResolvePaging_LimitCappedAtMax(t *testing.T) {
	paging := resolveFor(t, "limit=9999", 100, 365)
	assert.Equal(t, 365, paging.Limit)
}

func TestResolvePaging_NegativeOffsetNormalized(t *testing.T) {
	paging := resolveFor(t, "limit=10&offset=-5", 100, 365)
	assert.Equal(t, 0, paging.Offset)
	assert.Equal(t, 1, paging.Page)
}

func TestResolvePaging_Defaults(t *testing.T) {
	paging := resolveFor(t, "", 100, 365)

	assert.Equal(t, 100, paging.Limit)
	assert.Equal(t, 0, paging.Offset)
	assert.Equal(t, 1, paging.Page)
}

func TestResolvePaging_PagePerPage(t *testing.T) {
	paging := resolveFor(t, "page=3&per_page=20", 100, 365)

	assert.Equal(t, 20, paging.Limit)
	assert.Equal(t, 40, paging.Offset)
	assert.Equal(t, 3, paging.Page)
}

func TestBuildPaginationFromOffset(t *testing.T) {
	p := BuildPaginationFromOffset(95, 40, 20)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.EqualValues(t, 95, p.Total)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPaginationFromOffset_Empty(t *testing.T) {
	p := BuildPaginationFromOffset(0, 0, 20)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
