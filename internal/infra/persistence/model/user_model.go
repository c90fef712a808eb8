package model

import "time"

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'user'"`
	BrandID      *uint  `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Brand *BrandModel `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All returns every model in dependency order, for schema migration.
func All() []any {
	return []any{
		&BrandModel{},
		&UserModel{},
		&ProductModel{},
		&ProductVariantModel{},
		&ReviewModel{},
	}
}
