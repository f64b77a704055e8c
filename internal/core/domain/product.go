package domain

import "time"

// Product is a catalog entry. AverageRating and NumOfReviews are derived
// fields recomputed asynchronously from the reviews collection.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Company       string    `json:"company"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	PriceCents    int64     `json:"price_cents"`
	Inventory     int       `json:"inventory"`
	AverageRating float64   `json:"average_rating"`
	NumOfReviews  int       `json:"num_of_reviews"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
