package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// RecipeDelete hard-deletes a recipe and its label links. The labels
// themselves survive; only the join rows go. The stored image artifact
// is removed after the database commit so a failed delete never leaves
// a recipe pointing at nothing.
func (a *API) RecipeDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	recipe, ok := a.findRecipe(c, userID, requestID)
	if !ok {
		return
	}

	err := a.DB.Select(clause.Associations).Delete(recipe).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if recipe.Image != "" {
		if err := a.Store.Delete(context.Background(), recipe.Image); err != nil {
			// The row is already gone, so just log the orphaned artifact
			zap.L().Error("Failed to delete image artifact", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	c.Status(http.StatusNoContent)
}
