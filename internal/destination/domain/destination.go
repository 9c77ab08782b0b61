package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInput covers missing required fields, unparseable image
	// payloads and malformed coordinates.
	ErrInvalidInput = errors.New("invalid input")

	ErrNotFound = errors.New("destination not found")
)

type Destination struct {
	ID          string    `json:"idDestination"`
	IDProvider  string    `json:"idProvider"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ImageURLs   []string  `json:"imageUrls"`
	Categories  []string  `json:"categories,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Category is read-only from this service's perspective.
type Category struct {
	ID   string `json:"idCategory"`
	Name string `json:"name"`
}
