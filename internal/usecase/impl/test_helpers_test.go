package impl

import (
	"io"
	"log/slog"

	"storefront/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func uintPtr(v uint) *uint {
	return &v
}

func intPtr(v int) *int {
	return &v
}

var (
	testAnonymous   = entity.Anonymous{}
	testShopper     = entity.RegularUser{Principal: entity.Principal{UserID: 1, Username: "alice"}}
	testSeller5     = entity.Seller{Principal: entity.Principal{UserID: 2, Username: "acme"}, BrandID: 5}
	testSellerNoBrd = entity.Seller{Principal: entity.Principal{UserID: 3, Username: "fresh"}}
	testAdmin       = entity.Admin{Principal: entity.Principal{UserID: 4, Username: "root"}}
)
