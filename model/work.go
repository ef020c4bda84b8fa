// Package model provides data models for the portfolio backend.
package model

import (
	"time"
)

// Work represents a single portfolio entry.
type Work struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Link        string    `json:"link"`
	Image       string    `json:"image"` // relative URL under /uploads, "" if none
	Video       string    `json:"video"` // relative URL under /uploads, "" if none
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
