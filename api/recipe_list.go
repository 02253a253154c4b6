package api

import (
	"net/http"
	"recipe-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecipeList returns the caller's recipes, newest first. The tags and
// ingredients query params each take a comma-separated list of IDs and
// restrict the result to recipes linked to any of them. A recipe that
// matches through several labels still shows up once.
func (a *API) RecipeList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	q := a.DB.Model(&model.Recipe{}).Where("recipes.user_id = ?", userID)

	if tags := c.Query("tags"); tags != "" {
		ids, err := parseIDList(tags)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "tags must be a comma-separated list of IDs",
				"requestID": requestID,
			})
			return
		}

		q = q.Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", ids)
	}

	if ingredients := c.Query("ingredients"); ingredients != "" {
		ids, err := parseIDList(ingredients)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "ingredients must be a comma-separated list of IDs",
				"requestID": requestID,
			})
			return
		}

		q = q.Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", ids)
	}

	var recipes []model.Recipe

	err := q.Distinct("recipes.*").
		Order("recipes.id DESC").
		Preload("Tags").
		Preload("Ingredients").
		Find(&recipes).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list recipes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	for i := range recipes {
		a.presentRecipe(&recipes[i])
	}

	c.JSON(http.StatusOK, recipes)
}

// presentRecipe swaps the stored image key for a servable URL and makes
// sure the label slices marshal as [] instead of null.
func (a *API) presentRecipe(r *model.Recipe) {
	if r.Image != "" {
		r.Image = a.Store.URL(r.Image)
	}

	if r.Tags == nil {
		r.Tags = []model.Tag{}
	}

	if r.Ingredients == nil {
		r.Ingredients = []model.Ingredient{}
	}
}
