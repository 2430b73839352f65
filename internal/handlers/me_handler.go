package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farmtech/agrirent/internal/httperr"
	"github.com/farmtech/agrirent/internal/middleware"
	"github.com/farmtech/agrirent/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	farmerID := c.MustGet(middleware.ContextFarmerID).(uint)

	var farmer models.Farmer
	if err := h.db.First(&farmer, farmerID).Error; err != nil {
		httperr.NotFound(c, "farmer_not_found", "Farmer not found.")
		return
	}

	c.JSON(http.StatusOK, farmer)
}
