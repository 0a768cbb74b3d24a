package models

import "time"

// Product represents a marketplace listing. The seller reference is fixed at
// creation and never changes.
type Product struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Price       *int64         `json:"price"`
	ImageURL    string         `json:"imageUrl"`
	SellerID    string         `json:"sellerId"`
	CreatedAt   time.Time      `json:"createdAt"`
	Seller      *SellerSummary `json:"seller,omitempty"`
}

// SellerSummary is the contact info embedded in product listings. Fields are
// nil when the seller record no longer exists.
type SellerSummary struct {
	Name     *string `json:"name"`
	Whatsapp *string `json:"whatsapp"`
}
