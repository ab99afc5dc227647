package handlers

import (
	"net/http"

	providerRepo "snapfix/database/repository/provider"
	"snapfix/models"
	"snapfix/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProviderHandler exposes provider onboarding and lifecycle endpoints.
type ProviderHandler struct {
	Repo providerRepo.ProviderRepository
}

func NewProviderHandler(repo providerRepo.ProviderRepository) *ProviderHandler {
	return &ProviderHandler{Repo: repo}
}

// GetProviderByIDHandler returns details for a specific provider.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	provider, err := h.Repo.GetByID(id)
	if err != nil {
		logger.Error("Provider not found", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Provider not found", "")
		return
	}
	c.JSON(http.StatusOK, provider)
}

// RegisterProviderHandler onboards a new provider.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	logger := getLogger(c)
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		logger.Error("Invalid provider registration request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	provider.ID = uuid.New().String()
	if err := h.Repo.Create(&provider); err != nil {
		logger.Error("Failed to create provider", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Failed to create provider", err.Error())
		return
	}
	c.JSON(http.StatusCreated, provider)
}

// UpdateProviderStatusHandler applies a soft status change. Providers are
// never hard deleted.
func (h *ProviderHandler) UpdateProviderStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var input struct {
		Status             models.ProviderStatus `json:"status" binding:"required"`
		AcceptsNewRequests bool                  `json:"acceptsNewRequests"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	if err := h.Repo.UpdateStatus(id, input.Status, input.AcceptsNewRequests); err != nil {
		logger.Error("Failed to update provider status", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Failed to update provider status", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// CompleteJobHandler bumps a provider's completed-job counter.
func (h *ProviderHandler) CompleteJobHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Repo.IncrementCompletedJobs(id); err != nil {
		logger.Error("Failed to record completed job", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Failed to record completed job", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}
