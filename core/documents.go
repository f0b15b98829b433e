package core

import (
	"time"
)

// GalleryImage is a photo of past camps
// stored in the document store
type GalleryImage struct {
	ID          string    `json:"id" bson:"-"`
	Title       string    `json:"title" bson:"title"`
	Description *string   `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"imageUrl" bson:"image_url"`
	Category    string    `json:"category" bson:"category"`
	Year        *int      `json:"year,omitempty" bson:"year,omitempty"`
	Date        *string   `json:"date,omitempty" bson:"date,omitempty"`
	Order       *int      `json:"order,omitempty" bson:"order,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

// GalleryFilter narrows gallery listings
type GalleryFilter struct {
	Category string
	Year     int
}
