package postgres

import (
	"storefront/internal/domain/catalog"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogScopes renders a catalog.Query as GORM scopes on the products table.
func catalogScopes(query catalog.Query) []func(*gorm.DB) *gorm.DB {
	scopes := []func(*gorm.DB) *gorm.DB{
		func(db *gorm.DB) *gorm.DB {
			return db.Model(&model.ProductModel{})
		},
	}

	if query.BrandID != nil {
		brandID := *query.BrandID
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("brand_id = ?", brandID)
		})
	}

	if query.MinPrice != nil {
		minPrice := *query.MinPrice
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("price >= ?", minPrice)
		})
	}

	if query.MaxPrice != nil {
		maxPrice := *query.MaxPrice
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("price <= ?", maxPrice)
		})
	}

	if query.NameContains != "" {
		pattern := "%" + catalog.EscapeLike(query.NameContains) + "%"
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where(`name ILIKE ? ESCAPE '\'`, pattern)
		})
	}

	orderBy := query.OrderBy
	scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
		for _, order := range orderBy {
			db = db.Order(clause.OrderByColumn{
				Column: clause.Column{Name: string(order.Column)},
				Desc:   order.Desc,
			})
		}

		return db
	})

	return scopes
}
