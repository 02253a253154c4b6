package api

import (
	"net/http"
	"recipe-api/model"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Tags and ingredients share the exact same surface: owner-scoped
// listing (optionally restricted to labels attached to at least one
// recipe), rename and delete. The handlers below are generic over the
// two models; attrSpec carries the table wiring each one needs.
type attrSpec struct {
	table     string
	joinTable string
	joinCol   string
	kind      string
}

var (
	tagAttr        = attrSpec{"tags", "recipe_tags", "tag_id", "Tag"}
	ingredientAttr = attrSpec{"ingredients", "recipe_ingredients", "ingredient_id", "Ingredient"}
)

func attrList[T label](a *API, c *gin.Context, s attrSpec) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	assigned, err := strconv.Atoi(c.DefaultQuery("assigned_only", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "assigned_only must be 0 or 1",
			"requestID": requestID,
		})
		return
	}

	q := a.DB.Model(new(T)).Where(s.table+".user_id = ?", userID)

	if assigned != 0 {
		q = q.Joins("JOIN " + s.joinTable + " ON " + s.joinTable + "." + s.joinCol + " = " + s.table + ".id")
	}

	rows := []T{}

	err = q.Distinct(s.table + ".*").
		Order(s.table + ".name DESC").
		Find(&rows).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list "+s.table, zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, rows)
}

// notFound writes the uniform 404 used for missing and not-owned rows
// alike, so label existence never leaks across users.
func (s attrSpec) notFound(c *gin.Context, requestID string) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":     s.kind + " not found. It either doesn't exist or you don't own it",
		"requestID": requestID,
	})
}

func attrFetch[T label](a *API, c *gin.Context, s attrSpec) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		s.notFound(c, requestID)
		return
	}

	var row T

	err = a.DB.
		Where("user_id = ? AND id = ?", userID, id).
		First(&row).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			s.notFound(c, requestID)
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch from "+s.table, zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, row)
}

func attrUpdate[T label](a *API, c *gin.Context, s attrSpec) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		s.notFound(c, requestID)
		return
	}

	var data labelInput
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "name can't be empty",
			"requestID": requestID,
		})
		return
	}

	var row T

	err = a.DB.
		Where("user_id = ? AND id = ?", userID, id).
		First(&row).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			s.notFound(c, requestID)
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch from "+s.table, zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(&row).Update("name", data.Name).Error
	if err != nil {
		// Renaming onto a name the user already has trips the
		// (user_id, name) unique index
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "You already have a " + s.kind + " with that name",
			"requestID": requestID,
		})

		zap.L().Debug("Failed to rename in "+s.table, zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, row)
}

func attrDelete[T label](a *API, c *gin.Context, s attrSpec) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		s.notFound(c, requestID)
		return
	}

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		r := tx.Where("user_id = ? AND id = ?", userID, id).Delete(new(T))
		if r.Error != nil {
			return r.Error
		}

		if r.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Unlink from any recipes; the recipes themselves stay
		return tx.Exec("DELETE FROM "+s.joinTable+" WHERE "+s.joinCol+" = ?", id).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			s.notFound(c, requestID)
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete from "+s.table, zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *API) TagList(c *gin.Context)   { attrList[model.Tag](a, c, tagAttr) }
func (a *API) TagFetch(c *gin.Context)  { attrFetch[model.Tag](a, c, tagAttr) }
func (a *API) TagUpdate(c *gin.Context) { attrUpdate[model.Tag](a, c, tagAttr) }
func (a *API) TagDelete(c *gin.Context) { attrDelete[model.Tag](a, c, tagAttr) }

func (a *API) IngredientList(c *gin.Context)   { attrList[model.Ingredient](a, c, ingredientAttr) }
func (a *API) IngredientFetch(c *gin.Context)  { attrFetch[model.Ingredient](a, c, ingredientAttr) }
func (a *API) IngredientUpdate(c *gin.Context) { attrUpdate[model.Ingredient](a, c, ingredientAttr) }
func (a *API) IngredientDelete(c *gin.Context) { attrDelete[model.Ingredient](a, c, ingredientAttr) }
