// Package model defines database models
package model

type Recipe struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"index;not null" json:"-"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `gorm:"type:decimal(5,2);not null" json:"price"`
	Link        string  `json:"link"`

	// Storage key of the uploaded image, empty until one is attached.
	// Handlers swap this for a servable URL before responding.
	Image string `json:"image"`

	Tags        []Tag        `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE" json:"ingredients"`
}
