package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a product in the catalog
type Product struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	Price         float64   `json:"price" db:"price"`
	OriginalPrice float64   `json:"original_price" db:"original_price"`
	CategoryID    uuid.UUID `json:"category_id" db:"category_id"`
	Images        []string  `json:"images" db:"images"`
	Stock         int       `json:"stock" db:"stock"`
	Rating        float64   `json:"rating" db:"rating"`
	NumReviews    int       `json:"num_reviews" db:"num_reviews"`
	Brand         string    `json:"brand" db:"brand"`
	SellerID      uuid.UUID `json:"seller_id" db:"seller_id"`
	IsFeatured    bool      `json:"is_featured" db:"is_featured"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Category represents a product category
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
