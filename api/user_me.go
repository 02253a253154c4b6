package api

import (
	"net/http"
	"recipe-api/model"
	"recipe-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserMe returns the authenticated user's own profile. The password
// hash never leaves the database layer.
func (a *API) UserMe(c *gin.Context) {
	user := c.MustGet("user").(*model.User)

	c.JSON(http.StatusOK, gin.H{
		"email": user.Email,
		"name":  user.Name,
	})
}

type meUpdateBody struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// UserMeUpdate partially updates name and/or password. The email is the
// account's identity and can't be changed through this path.
func (a *API) UserMeUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := c.MustGet("user").(*model.User)

	var data meUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updates := map[string]any{}

	if data.Name != nil {
		updates["name"] = *data.Name
	}

	if data.Password != nil {
		if err := validators.PasswordValidator(*data.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		hash, err := a.Hasher.HashPassword(*data.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		updates["password_hash"] = hash
	}

	if len(updates) > 0 {
		if err := a.DB.Model(user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update profile", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	if data.Name != nil {
		user.Name = *data.Name
	}

	c.JSON(http.StatusOK, gin.H{
		"email": user.Email,
		"name":  user.Name,
	})
}
