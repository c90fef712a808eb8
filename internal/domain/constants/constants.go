// Package constants holds string identifiers shared across layers.
package constants

// Supported event publisher providers.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Catalog event types.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
	EventProductLiked   = "product.liked"
	EventReviewCreated  = "review.created"
)

// Product form field names.
const (
	FieldProductName = "product_name"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
	FieldBrandID     = "brand_id"
	FieldColor       = "color"
	FieldSize        = "size"
	FieldStock       = "stock"
	FieldInfoID      = "info_id[]"
	FieldInfoStock   = "info_stock[]"
	FieldDeleteIDs   = "delete_ids[]"
	FieldNewColor    = "new_color[]"
	FieldNewSize     = "new_size[]"
	FieldNewStock    = "new_stock[]"
)
