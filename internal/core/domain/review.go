package domain

import "time"

// Review is a user's opinion on a product. The pair (ProductID, UserID) is
// unique across all reviews; the reviews collection enforces it with a
// compound unique index so concurrent writers cannot slip a duplicate past
// the application-level check.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingSummary is the aggregate recomputed after every review mutation.
type RatingSummary struct {
	Average float64
	Count   int
}
