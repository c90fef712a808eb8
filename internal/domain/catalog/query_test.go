package catalog

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw  string
		want Sort
	}{
		{"", SortNewest},
		{"newest", SortNewest},
		{"price_asc", SortPriceAsc},
		{"PRICE_DESC", SortPriceDesc},
		{"most_liked", SortMostLiked},
		{"like_desc", SortMostLiked},
		{"random", SortNewest},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSort(tt.raw))
		})
	}
}

func TestBuildQuery_EmptyFiltersIsNewestFirst(t *testing.T) {
	q := BuildQuery(Filters{})

	assert.Nil(t, q.BrandID)
	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.MaxPrice)
	assert.Empty(t, q.NameContains)
	assert.Equal(t, []Order{{Column: ColumnID, Desc: true}}, q.OrderBy)
}

func TestBuildQuery_SortsHaveIDTiebreaker(t *testing.T) {
	tests := []struct {
		sort  Sort
		first Order
	}{
		{SortPriceAsc, Order{Column: ColumnPrice}},
		{SortPriceDesc, Order{Column: ColumnPrice, Desc: true}},
		{SortMostLiked, Order{Column: ColumnLikeCount, Desc: true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			q := BuildQuery(Filters{Sort: tt.sort})
			require.Len(t, q.OrderBy, 2)
			assert.Equal(t, tt.first, q.OrderBy[0])
			assert.Equal(t, Order{Column: ColumnID, Desc: true}, q.OrderBy[1])
		})
	}
}

func TestBuildQuery_CarriesPredicates(t *testing.T) {
	brandID := uint(3)
	minPrice := decimal.NewFromInt(10)
	maxPrice := decimal.RequireFromString("99.50")

	q := BuildQuery(Filters{
		BrandID:  &brandID,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Text:     "  Shirt ",
	})

	assert.Equal(t, &brandID, q.BrandID)
	assert.True(t, q.MinPrice.Equal(minPrice))
	assert.True(t, q.MaxPrice.Equal(maxPrice))
	assert.Equal(t, "Shirt", q.NameContains)
}

func TestBuildQuery_BlankTextImposesNothing(t *testing.T) {
	q := BuildQuery(Filters{Text: "   "})

	assert.Empty(t, q.NameContains)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% cotton`, EscapeLike("100% cotton"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\tmp`, EscapeLike(`c:\tmp`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}

func TestParseFilters(t *testing.T) {
	filters, err := ParseFilters(RawFilters{
		BrandID:  "2",
		MinPrice: "5",
		MaxPrice: "",
		Text:     "hat",
		Sort:     "like_desc",
	})
	require.NoError(t, err)

	require.NotNil(t, filters.BrandID)
	assert.Equal(t, uint(2), *filters.BrandID)
	require.NotNil(t, filters.MinPrice)
	assert.True(t, filters.MinPrice.Equal(decimal.NewFromInt(5)))
	assert.Nil(t, filters.MaxPrice)
	assert.Equal(t, "hat", filters.Text)
	assert.Equal(t, SortMostLiked, filters.Sort)
}

func TestParseFilters_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  RawFilters
	}{
		{"brand not a number", RawFilters{BrandID: "abc"}},
		{"brand zero", RawFilters{BrandID: "0"}},
		{"min price not a number", RawFilters{MinPrice: "cheap"}},
		{"max price negative", RawFilters{MaxPrice: "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilters(tt.raw)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
