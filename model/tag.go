package model

// Tag names only need to be unique per user. Someone else's "Vegan"
// is a different row than mine.
type Tag struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"uniqueIndex:idx_tags_user_name;not null" json:"-"`
	Name   string `gorm:"uniqueIndex:idx_tags_user_name;not null" json:"name"`
}
