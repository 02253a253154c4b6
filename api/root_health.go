package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
