package api

import (
	"net/http"
	"recipe-api/model"
	"recipe-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recipeCreateBody struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	TimeMinutes *int         `json:"time_minutes"`
	Price       *float64     `json:"price"`
	Link        string       `json:"link"`
	Tags        []labelInput `json:"tags"`
	Ingredients []labelInput `json:"ingredients"`
}

// RecipeCreate creates a recipe for the caller. Labels referenced by
// name are get-or-created scoped to the caller; a "user" field in the
// payload is never bound, so ownership can't be forged.
func (a *API) RecipeCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data recipeCreateBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.TimeMinutes == nil || data.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "time_minutes and price are required",
			"requestID": requestID,
		})
		return
	}

	for _, v := range []error{
		validators.TitleValidator(data.Title),
		validators.TimeValidator(*data.TimeMinutes),
		validators.PriceValidator(*data.Price),
	} {
		if v != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     v.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	recipe := model.Recipe{
		UserID:      userID,
		Title:       data.Title,
		Description: data.Description,
		TimeMinutes: *data.TimeMinutes,
		Price:       *data.Price,
		Link:        data.Link,
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Ingredients").Create(&recipe).Error; err != nil {
			return err
		}

		tags, err := resolveLabels(tx, userID, data.Tags, buildTag)
		if err != nil {
			return err
		}

		if len(tags) > 0 {
			if err := tx.Model(&recipe).Association("Tags").Append(tags); err != nil {
				return err
			}
		}

		ingredients, err := resolveLabels(tx, userID, data.Ingredients, buildIngredient)
		if err != nil {
			return err
		}

		if len(ingredients) > 0 {
			if err := tx.Model(&recipe).Association("Ingredients").Append(ingredients); err != nil {
				return err
			}
		}

		recipe.Tags = tags
		recipe.Ingredients = ingredients
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	a.presentRecipe(&recipe)
	c.JSON(http.StatusCreated, recipe)
}
