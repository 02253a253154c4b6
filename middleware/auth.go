package middleware

import (
	"net/http"
	"recipe-api/model"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewTokenMiddleware resolves an "Authorization: Token <key>" header
// against the auth_tokens table and sets userID on the context. Anything
// short of a valid key for an active user is a 401, never a 403, so a
// caller can't probe which tokens exist.
func NewTokenMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Authentication credentials were not provided",
				"requestID": requestID,
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Token" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid authorization header",
				"requestID": requestID,
			})
			return
		}

		var token model.AuthToken

		err := d.Where("key = ?", parts[1]).First(&token).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Invalid token",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		var user model.User

		err = d.Where("id = ?", token.UserID).First(&user).Error
		if err != nil || !user.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid token",
				"requestID": requestID,
			})

			if err != nil && err != gorm.ErrRecordNotFound {
				zap.L().Error("Failed to look up token owner", zap.Error(err), zap.String("requestID", requestID))
			}
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", &user)
		c.Next()
	}
}
