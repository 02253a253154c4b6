package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	Name         string `json:"name"`
	PasswordHash string `gorm:"not null" json:"-"`
	Active       bool   `gorm:"default:true" json:"-"`
	Staff        bool   `gorm:"default:false" json:"-"`
	Superuser    bool   `gorm:"default:false" json:"-"`

	Token       *AuthToken   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipes     []Recipe     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Tags        []Tag        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredients []Ingredient `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// AuthToken is an opaque bearer token. One row per user, so logging in
// again hands back the same key instead of minting a second one.
type AuthToken struct {
	Key       string    `gorm:"primaryKey"`
	UserID    string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}
