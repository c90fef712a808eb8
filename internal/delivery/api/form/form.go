// Package form turns urlencoded product forms into use case inputs. The product edit form
// sends parallel arrays; they are zipped here into one record per row, and rows that cannot
// be read are dropped and reported as issues instead of reaching the use case.
package form

import (
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

// Issue describes one submitted row that was dropped while reading the form.
type Issue struct {
	Field  string `json:"field"`
	Index  int    `json:"index"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}

// ProductBase reads the base product fields shared by create and update.
func ProductBase(form url.Values) (usecase.ProductBaseInput, error) {
	base := usecase.ProductBaseInput{
		Name:        strings.TrimSpace(first(form, constants.FieldProductName)),
		Description: first(form, constants.FieldDescription),
		ImageURL:    strings.TrimSpace(first(form, constants.FieldImageURL)),
	}

	rawPrice := strings.TrimSpace(first(form, constants.FieldPrice))
	if rawPrice == "" {
		return base, domainerrors.NewValidationError("price is required")
	}
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return base, domainerrors.NewValidationError("price must be a number, got %q", rawPrice)
	}
	base.Price = price

	if rawBrand := strings.TrimSpace(first(form, constants.FieldBrandID)); rawBrand != "" {
		id, err := parseID(rawBrand)
		if err != nil {
			return base, domainerrors.NewValidationError("brand_id must be a positive integer, got %q", rawBrand)
		}
		base.BrandID = &id
	}

	return base, nil
}

// CreateProduct reads a create form: base fields plus the first variant. A blank stock means zero.
func CreateProduct(form url.Values) (*usecase.CreateProductInput, error) {
	base, err := ProductBase(form)
	if err != nil {
		return nil, err
	}

	input := &usecase.CreateProductInput{
		ProductBaseInput: base,
		Color:            strings.TrimSpace(first(form, constants.FieldColor)),
		Size:             strings.TrimSpace(first(form, constants.FieldSize)),
	}

	if rawStock := strings.TrimSpace(first(form, constants.FieldStock)); rawStock != "" {
		stock, err := strconv.Atoi(rawStock)
		if err != nil {
			return nil, domainerrors.NewValidationError("stock must be an integer, got %q", rawStock)
		}
		input.Stock = stock
	}

	return input, nil
}

// UpdateProduct reads an edit form. Base field errors abort; row errors become issues.
func UpdateProduct(form url.Values) (*usecase.UpdateProductInput, []Issue, error) {
	base, err := ProductBase(form)
	if err != nil {
		return nil, nil, err
	}

	input := &usecase.UpdateProductInput{ProductBaseInput: base}
	var issues []Issue

	input.DeleteIDs, issues = deleteRows(form, issues)
	input.ExistingUpdates, issues = existingRows(form, issues)
	input.NewVariants, issues = newRows(form, issues)

	return input, issues, nil
}

func deleteRows(form url.Values, issues []Issue) ([]uint, []Issue) {
	raw := values(form, constants.FieldDeleteIDs)
	ids := make([]uint, 0, len(raw))

	for i, value := range raw {
		id, err := parseID(value)
		if err != nil {
			issues = append(issues, Issue{Field: constants.FieldDeleteIDs, Index: i, Value: value, Reason: "variant id must be a positive integer"})

			continue
		}
		ids = append(ids, id)
	}

	return ids, issues
}

// existingRows zips info_id[i] with info_stock[i]. A missing or blank stock leaves the row unchanged.
func existingRows(form url.Values, issues []Issue) ([]usecase.ExistingVariantUpdate, []Issue) {
	ids := values(form, constants.FieldInfoID)
	stocks := values(form, constants.FieldInfoStock)
	rows := make([]usecase.ExistingVariantUpdate, 0, len(ids))

	for i, rawID := range ids {
		id, err := parseID(rawID)
		if err != nil {
			issues = append(issues, Issue{Field: constants.FieldInfoID, Index: i, Value: rawID, Reason: "variant id must be a positive integer"})

			continue
		}

		row := usecase.ExistingVariantUpdate{VariantID: id}

		if rawStock := strings.TrimSpace(at(stocks, i)); rawStock != "" {
			stock, err := strconv.Atoi(rawStock)
			if err != nil {
				issues = append(issues, Issue{Field: constants.FieldInfoStock, Index: i, Value: rawStock, Reason: "stock must be an integer"})

				continue
			}
			row.Stock = &stock
		}

		rows = append(rows, row)
	}

	return rows, issues
}

// newRows zips new_color[i], new_size[i] and new_stock[i]. Rows left completely blank are
// the empty trailing row of the form and are ignored without an issue.
func newRows(form url.Values, issues []Issue) ([]usecase.NewVariantInput, []Issue) {
	colors := values(form, constants.FieldNewColor)
	sizes := values(form, constants.FieldNewSize)
	stocks := values(form, constants.FieldNewStock)

	count := max(len(colors), len(sizes), len(stocks))
	rows := make([]usecase.NewVariantInput, 0, count)

	for i := range count {
		color := strings.TrimSpace(at(colors, i))
		size := strings.TrimSpace(at(sizes, i))
		rawStock := strings.TrimSpace(at(stocks, i))

		if color == "" && size == "" && rawStock == "" {
			continue
		}
		if color == "" || size == "" {
			issues = append(issues, Issue{Field: constants.FieldNewColor, Index: i, Reason: "color and size are required"})

			continue
		}

		row := usecase.NewVariantInput{Color: color, Size: size}
		if rawStock != "" {
			stock, err := strconv.Atoi(rawStock)
			if err != nil {
				issues = append(issues, Issue{Field: constants.FieldNewStock, Index: i, Value: rawStock, Reason: "stock must be an integer"})

				continue
			}
			row.Stock = stock
		}

		rows = append(rows, row)
	}

	return rows, issues
}

// values returns the submitted values of an array field, accepting the name with or without "[]".
func values(form url.Values, name string) []string {
	if v, ok := form[name]; ok {
		return v
	}

	return form[strings.TrimSuffix(name, "[]")]
}

func first(form url.Values, name string) string {
	return at(values(form, name), 0)
}

func at(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}

	return ""
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, strconv.ErrRange
	}

	return uint(id), nil
}
