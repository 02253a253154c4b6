package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"recipe-api/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagList(t *testing.T) {
	a := newTestAPI(t)
	other, _ := seedUser(t, a, "other@example.com")
	user, token := seedUser(t, a, "cook@example.com")

	require.NoError(t, a.DB.Create(&model.Tag{UserID: user.ID, Name: "Dessert"}).Error)
	require.NoError(t, a.DB.Create(&model.Tag{UserID: user.ID, Name: "Vegan"}).Error)
	require.NoError(t, a.DB.Create(&model.Tag{UserID: other.ID, Name: "Fruity"}).Error)

	w := doJSON(t, a, "GET", "/api/recipe/tags", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []model.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	require.Len(t, tags, 2)

	// Name descending
	assert.Equal(t, "Vegan", tags[0].Name)
	assert.Equal(t, "Dessert", tags[1].Name)
}

func TestTagListAssignedOnly(t *testing.T) {
	a := newTestAPI(t)
	user, token := seedUser(t, a, "cook@example.com")

	require.NoError(t, a.DB.Create(&model.Tag{UserID: user.ID, Name: "Unused"}).Error)
	createRecipe(t, a, token, map[string]any{
		"tags": []map[string]any{{"name": "Dinner"}},
	})

	w := doJSON(t, a, "GET", "/api/recipe/tags?assigned_only=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []model.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	require.Len(t, tags, 1)
	assert.Equal(t, "Dinner", tags[0].Name)
}

func TestTagListAssignedOnlyDeduplicates(t *testing.T) {
	a := newTestAPI(t)
	_, token := seedUser(t, a, "cook@example.com")

	// Two recipes sharing one tag must not list it twice
	createRecipe(t, a, token, map[string]any{
		"title": "Eggs",
		"tags":  []map[string]any{{"name": "Breakfast"}},
	})
	createRecipe(t, a, token, map[string]any{
		"title": "Porridge",
		"tags":  []map[string]any{{"name": "Breakfast"}},
	})

	w := doJSON(t, a, "GET", "/api/recipe/tags?assigned_only=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []model.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	assert.Len(t, tags, 1)
}

func TestTagUpdate(t *testing.T) {
	a := newTestAPI(t)
	user, token := seedUser(t, a, "cook@example.com")

	tag := model.Tag{UserID: user.ID, Name: "After dinner"}
	require.NoError(t, a.DB.Create(&tag).Error)

	w := doJSON(t, a, "PATCH", fmt.Sprintf("/api/recipe/tags/%d", tag.ID), token, map[string]any{
		"name": "Dessert",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored model.Tag
	require.NoError(t, a.DB.First(&stored, tag.ID).Error)
	assert.Equal(t, "Dessert", stored.Name)
}

func TestTagUpdateOtherUsers(t *testing.T) {
	a := newTestAPI(t)
	other, _ := seedUser(t, a, "other@example.com")
	_, token := seedUser(t, a, "cook@example.com")

	tag := model.Tag{UserID: other.ID, Name: "Private"}
	require.NoError(t, a.DB.Create(&tag).Error)

	w := doJSON(t, a, "PATCH", fmt.Sprintf("/api/recipe/tags/%d", tag.ID), token, map[string]any{
		"name": "Hijacked",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored model.Tag
	require.NoError(t, a.DB.First(&stored, tag.ID).Error)
	assert.Equal(t, "Private", stored.Name)
}

func TestTagDelete(t *testing.T) {
	a := newTestAPI(t)
	_, token := seedUser(t, a, "cook@example.com")

	recipe := createRecipe(t, a, token, map[string]any{
		"tags": []map[string]any{{"name": "Doomed"}},
	})
	tagID := recipe.Tags[0].ID

	w := doJSON(t, a, "DELETE", fmt.Sprintf("/api/recipe/tags/%d", tagID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The recipe survives, just without the link
	w = doJSON(t, a, "GET", fmt.Sprintf("/api/recipe/recipes/%d", recipe.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Empty(t, fetched.Tags)
}

func TestTagDeleteOtherUsers(t *testing.T) {
	a := newTestAPI(t)
	other, _ := seedUser(t, a, "other@example.com")
	_, token := seedUser(t, a, "cook@example.com")

	tag := model.Tag{UserID: other.ID, Name: "Private"}
	require.NoError(t, a.DB.Create(&tag).Error)

	w := doJSON(t, a, "DELETE", fmt.Sprintf("/api/recipe/tags/%d", tag.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTagNamesScopedPerUser(t *testing.T) {
	a := newTestAPI(t)
	_, tokenA := seedUser(t, a, "a@example.com")
	_, tokenB := seedUser(t, a, "b@example.com")

	// Two users with the same tag name get distinct rows
	ra := createRecipe(t, a, tokenA, map[string]any{"tags": []map[string]any{{"name": "Vegan"}}})
	rb := createRecipe(t, a, tokenB, map[string]any{"tags": []map[string]any{{"name": "Vegan"}}})
	assert.NotEqual(t, ra.Tags[0].ID, rb.Tags[0].ID)

	var count int64
	a.DB.Model(&model.Tag{}).Where("name = ?", "Vegan").Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestTagCreateNotExposed(t *testing.T) {
	a := newTestAPI(t)
	_, token := seedUser(t, a, "cook@example.com")

	// Labels only come into existence through recipe writes
	w := doJSON(t, a, "POST", "/api/recipe/tags", token, map[string]any{"name": "Nope"})
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestIngredientSurface(t *testing.T) {
	a := newTestAPI(t)
	user, token := seedUser(t, a, "cook@example.com")

	createRecipe(t, a, token, map[string]any{
		"ingredients": []map[string]any{{"name": "Salt"}, {"name": "Pepper"}},
	})

	w := doJSON(t, a, "GET", "/api/recipe/ingredients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ingredients []model.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ingredients))
	require.Len(t, ingredients, 2)
	assert.Equal(t, "Salt", ingredients[0].Name)

	w = doJSON(t, a, "PATCH", fmt.Sprintf("/api/recipe/ingredients/%d", ingredients[1].ID), token, map[string]any{
		"name": "Black pepper",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, "DELETE", fmt.Sprintf("/api/recipe/ingredients/%d", ingredients[0].ID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	a.DB.Model(&model.Ingredient{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}
