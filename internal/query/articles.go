// Package query validates article-listing and pagination parameters and
// translates them into safe query plans. Sort columns and directions are
// checked against greenlists; anything outside them is rejected as a bad
// request before any SQL is built.
package query

import (
	"net/url"
	"strconv"

	"github.com/oliviamartin/nc-news/backend/internal/apperr"
)

const (
	DefaultLimit  = 10
	defaultSortBy = "created_at"
	defaultOrder  = "desc"
)

var sortColumns = map[string]bool{
	"article_id":      true,
	"title":           true,
	"topic":           true,
	"author":          true,
	"body":            true,
	"created_at":      true,
	"votes":           true,
	"article_img_url": true,
}

var sortOrders = map[string]bool{
	"asc":  true,
	"desc": true,
}

// Pagination is the validated limit/offset window shared by the article and
// comment listing endpoints.
type Pagination struct {
	Limit  int
	Offset int
}

// ArticleListing is a validated plan for the article-listing query. Topic is
// carried through opaque; its existence is checked against the live topics
// table by the store.
type ArticleListing struct {
	SortBy string
	Order  string
	Topic  string
	Pagination
}

// ParseArticleListing validates sort_by, order, topic, limit and p from the
// request query string, applying defaults where a parameter is absent.
func ParseArticleListing(values url.Values) (ArticleListing, error) {
	listing := ArticleListing{
		SortBy: defaultSortBy,
		Order:  defaultOrder,
		Topic:  values.Get("topic"),
	}

	if values.Has("sort_by") {
		sortBy := values.Get("sort_by")
		if !sortColumns[sortBy] {
			return ArticleListing{}, apperr.BadRequest("bad request")
		}
		listing.SortBy = sortBy
	}

	if values.Has("order") {
		order := values.Get("order")
		if !sortOrders[order] {
			return ArticleListing{}, apperr.BadRequest("bad request")
		}
		listing.Order = order
	}

	pagination, err := ParsePagination(values)
	if err != nil {
		return ArticleListing{}, err
	}
	listing.Pagination = pagination

	return listing, nil
}

// ParsePagination validates limit (non-negative, default 10) and p (positive,
// default 1) and computes the offset as (p-1)*limit.
func ParsePagination(values url.Values) (Pagination, error) {
	limit := DefaultLimit
	if values.Has("limit") {
		parsed, err := strconv.Atoi(values.Get("limit"))
		if err != nil || parsed < 0 {
			return Pagination{}, apperr.BadRequest("bad request")
		}
		limit = parsed
	}

	page := 1
	if values.Has("p") {
		parsed, err := strconv.Atoi(values.Get("p"))
		if err != nil || parsed < 1 {
			return Pagination{}, apperr.BadRequest("bad request")
		}
		page = parsed
	}

	return Pagination{Limit: limit, Offset: (page - 1) * limit}, nil
}
