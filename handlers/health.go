package handlers

import (
	"net/http"

	"snapfix/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest stored dependency health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
