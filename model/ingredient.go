package model

type Ingredient struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"uniqueIndex:idx_ingredients_user_name;not null" json:"-"`
	Name   string `gorm:"uniqueIndex:idx_ingredients_user_name;not null" json:"name"`
}
