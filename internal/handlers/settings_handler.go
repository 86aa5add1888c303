package handlers

import (
	"net/http"

	"boutique-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/settings ---
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Settings.Get())
}

// --- PUT: /api/settings ---
// Replaces the whole settings blob, matching the snapshot persistence model.
func (h *Handler) UpdateSettings(c *gin.Context) {
	var input models.Settings
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := h.Settings.Save(input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved successfully", "settings": input})
}
