package api

import (
	"net/http"
	"recipe-api/model"
	"recipe-api/pkg/util"
	"recipe-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const tokenBytes = 20

type tokenBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserToken exchanges valid credentials for the user's opaque token.
// Every credential failure answers 400 with the same message so the
// endpoint can't be used to probe which emails are registered.
func (a *API) UserToken(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data tokenBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Email == "" || data.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email and password fields can't be empty",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err := a.DB.Where("email = ?", validators.NormalizeEmail(data.Email)).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Unable to authenticate with provided credentials",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	ok, err := a.Hasher.VerifyPassword(data.Password, user.PasswordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok || !user.Active {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Unable to authenticate with provided credentials",
			"requestID": requestID,
		})
		return
	}

	var token model.AuthToken

	err = a.DB.Where("user_id = ?", user.ID).First(&token).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		key, err := util.GenerateToken(tokenBytes)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to generate token key", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		token = model.AuthToken{
			Key:    key,
			UserID: user.ID,
		}

		if err := a.DB.Create(&token).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to store token", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token.Key,
	})
}
