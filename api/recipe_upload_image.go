package api

import (
	"net/http"
	"recipe-api/validators"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeUploadImage attaches an image to a recipe. The stored key is a
// fresh UUID plus the sniffed extension, so uploads never collide and
// artifact deletion isn't tied to database IDs.
func (a *API) RecipeUploadImage(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	recipe, ok := a.findRecipe(c, userID, requestID)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No image provided",
			"requestID": requestID,
		})
		return
	}

	status, mime, f, err := validators.ImageValidator(fh)
	if err != nil {
		if status == http.StatusInternalServerError {
			c.JSON(status, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to validate image", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.JSON(status, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}
	defer f.Close()

	key := "uploads/recipe/" + uuid.NewString() + mime.Extension()

	err = a.Store.Save(c.Request.Context(), key, f, fh.Size, mime.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store image", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	previous := recipe.Image

	err = a.DB.Model(recipe).Update("image", key).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to record image on recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if previous != "" {
		if err := a.Store.Delete(c.Request.Context(), previous); err != nil {
			zap.L().Error("Failed to delete replaced image artifact", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"image": a.Store.URL(key),
	})
}
