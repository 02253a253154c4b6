package api

import (
	"net/http"
	"recipe-api/model"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecipeFetch returns a single recipe. A recipe owned by someone else
// answers the same 404 as a missing one, so existence never leaks.
func (a *API) RecipeFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	recipe, ok := a.findRecipe(c, userID, requestID)
	if !ok {
		return
	}

	a.presentRecipe(recipe)
	c.JSON(http.StatusOK, recipe)
}

// findRecipe loads the recipe from the :id param scoped to the caller,
// writing the error response itself when that fails. A non-numeric ID
// gets the same 404 as a missing one.
func (a *API) findRecipe(c *gin.Context, userID, requestID string) (*model.Recipe, bool) {
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Recipe not found. It either doesn't exist or you don't own it",
			"requestID": requestID,
		})
		return nil, false
	}

	var recipe model.Recipe

	err = a.DB.
		Where("user_id = ? AND id = ?", userID, recipeID).
		Preload("Tags").
		Preload("Ingredients").
		First(&recipe).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Recipe not found. It either doesn't exist or you don't own it",
				"requestID": requestID,
			})
			return nil, false
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch recipe", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	return &recipe, true
}
