// Package catalog translates listing filters into a storage-agnostic query description.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sort selects the ordering of a listing.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortMostLiked Sort = "most_liked"

	// sortLikeDesc is the form value older clients send for SortMostLiked.
	sortLikeDesc = "like_desc"
)

// ParseSort maps a raw sort value to a Sort. Unknown values fall back to SortNewest.
func ParseSort(raw string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(raw))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortMostLiked, sortLikeDesc:
		return SortMostLiked
	default:
		return SortNewest
	}
}

// Filters are the optional listing parameters. Nil and blank values impose nothing.
type Filters struct {
	BrandID  *uint
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Text     string
	Sort     Sort
}

// Column names a sortable product attribute.
type Column string

const (
	ColumnID        Column = "id"
	ColumnPrice     Column = "price"
	ColumnLikeCount Column = "like_count"
)

// Order is one ordering key.
type Order struct {
	Column Column
	Desc   bool
}

// Query is the conjunction of predicates plus an ordering. It is interpreted by
// the persistence layer.
type Query struct {
	BrandID      *uint
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	NameContains string // Matched case-insensitively as a literal substring.
	OrderBy      []Order
}

// BuildQuery turns filters into a Query. It never fails; an empty result set is a valid outcome.
func BuildQuery(filters Filters) Query {
	q := Query{
		BrandID:      filters.BrandID,
		MinPrice:     filters.MinPrice,
		MaxPrice:     filters.MaxPrice,
		NameContains: strings.TrimSpace(filters.Text),
	}

	newest := Order{Column: ColumnID, Desc: true}

	switch filters.Sort {
	case SortPriceAsc:
		q.OrderBy = []Order{{Column: ColumnPrice}, newest}
	case SortPriceDesc:
		q.OrderBy = []Order{{Column: ColumnPrice, Desc: true}, newest}
	case SortMostLiked:
		q.OrderBy = []Order{{Column: ColumnLikeCount, Desc: true}, newest}
	default:
		q.OrderBy = []Order{newest}
	}

	return q
}

// EscapeLike escapes the LIKE wildcards so the text matches literally.
func EscapeLike(text string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(text)
}
