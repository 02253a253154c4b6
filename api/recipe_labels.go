package api

import (
	"recipe-api/model"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type labelInput struct {
	Name string `json:"name" binding:"required"`
}

type label interface {
	model.Tag | model.Ingredient
}

// resolveLabels turns a list of {name} payload objects into persisted
// rows owned by userID, creating any that don't exist yet. The insert
// goes through ON CONFLICT DO NOTHING against the (user_id, name)
// unique index, so two identical concurrent requests can't end up with
// duplicate rows; the follow-up fetch picks up whichever insert won.
func resolveLabels[T label](tx *gorm.DB, userID string, inputs []labelInput, build func(userID, name string) T) ([]T, error) {
	out := make([]T, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))

	for _, in := range inputs {
		if seen[in.Name] {
			continue
		}
		seen[in.Name] = true

		row := build(userID, in.Name)

		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
		if err != nil {
			return nil, err
		}

		err = tx.Where("user_id = ? AND name = ?", userID, in.Name).First(&row).Error
		if err != nil {
			return nil, err
		}

		out = append(out, row)
	}

	return out, nil
}

func buildTag(userID, name string) model.Tag {
	return model.Tag{UserID: userID, Name: name}
}

func buildIngredient(userID, name string) model.Ingredient {
	return model.Ingredient{UserID: userID, Name: name}
}

// parseIDList parses a comma-separated list of integer IDs as found in
// the tags / ingredients filter query params.
func parseIDList(s string) ([]uint, error) {
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))

	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, err
		}

		ids = append(ids, uint(id))
	}

	return ids, nil
}
