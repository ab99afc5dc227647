package handlers

import (
	"net/http"

	"snapfix/models"
	"snapfix/services/matching"
	"snapfix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MatchingHandler exposes the matching engine to the mobile client.
type MatchingHandler struct {
	Service matching.MatchingService
}

func NewMatchingHandler(service matching.MatchingService) *MatchingHandler {
	return &MatchingHandler{Service: service}
}

// FindProvidersHandler runs one matching call. The response always carries
// the full three-field envelope plus a human-readable summary; external
// search failures degrade silently inside the service.
func (h *MatchingHandler) FindProvidersHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid match request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Service.FindProviders(c.Request.Context(), req)
	if err != nil {
		// The service only errors on malformed input.
		logger.Warn("Match request rejected", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  result,
		"message": result.Summary(),
	})
}
