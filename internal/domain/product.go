package domain

import (
	"time"
)

// Product is a store item clients can purchase. There is no stock concept;
// the only purchase gate is "not already purchased by this user".
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"` // Non-negative
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
