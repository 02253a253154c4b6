package api

import (
	"net/http"
	"recipe-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recipeUpdateBody struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	TimeMinutes *int          `json:"time_minutes"`
	Price       *float64      `json:"price"`
	Link        *string       `json:"link"`
	Tags        *[]labelInput `json:"tags"`
	Ingredients *[]labelInput `json:"ingredients"`
}

// RecipeUpdate handles both PUT and PATCH. PUT insists on the required
// scalar fields; PATCH touches only what the payload supplies. For the
// label sets it's the presence of the key that matters: "tags": []
// clears the links while an absent key leaves them alone.
func (a *API) RecipeUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	recipe, ok := a.findRecipe(c, userID, requestID)
	if !ok {
		return
	}

	var data recipeUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if c.Request.Method == http.MethodPut {
		if data.Title == nil || data.TimeMinutes == nil || data.Price == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "title, time_minutes and price are required",
				"requestID": requestID,
			})
			return
		}
	}

	updates := map[string]any{}

	if data.Title != nil {
		if err := validators.TitleValidator(*data.Title); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
		updates["title"] = *data.Title
	}

	if data.TimeMinutes != nil {
		if err := validators.TimeValidator(*data.TimeMinutes); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
		updates["time_minutes"] = *data.TimeMinutes
	}

	if data.Price != nil {
		if err := validators.PriceValidator(*data.Price); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
		updates["price"] = *data.Price
	}

	if data.Description != nil {
		updates["description"] = *data.Description
	}

	if data.Link != nil {
		updates["link"] = *data.Link
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(recipe).Updates(updates).Error; err != nil {
				return err
			}
		}

		if data.Tags != nil {
			tags, err := resolveLabels(tx, userID, *data.Tags, buildTag)
			if err != nil {
				return err
			}

			if len(tags) == 0 {
				err = tx.Model(recipe).Association("Tags").Clear()
			} else {
				err = tx.Model(recipe).Association("Tags").Replace(tags)
			}
			if err != nil {
				return err
			}

			recipe.Tags = tags
		}

		if data.Ingredients != nil {
			ingredients, err := resolveLabels(tx, userID, *data.Ingredients, buildIngredient)
			if err != nil {
				return err
			}

			if len(ingredients) == 0 {
				err = tx.Model(recipe).Association("Ingredients").Clear()
			} else {
				err = tx.Model(recipe).Association("Ingredients").Replace(ingredients)
			}
			if err != nil {
				return err
			}

			recipe.Ingredients = ingredients
		}

		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	a.presentRecipe(recipe)
	c.JSON(http.StatusOK, recipe)
}
