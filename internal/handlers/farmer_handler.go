package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farmtech/agrirent/internal/httperr"
	"github.com/farmtech/agrirent/internal/models"
)

type FarmerHandler struct {
	db *gorm.DB
}

func NewFarmerHandler(db *gorm.DB) *FarmerHandler {
	return &FarmerHandler{db: db}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Village *string `json:"village,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	District *string `json:"district,omitempty"`
	State    *string `json:"state,omitempty"`
	Pincode  *string `json:"pincode,omitempty"`

	FarmSize       *string `json:"farm_size,omitempty"`
	CropType       *string `json:"crop_type,omitempty"`
	Experience     *string `json:"experience,omitempty"`
	EquipmentOwned *string `json:"equipment_owned,omitempty"`
}

// --------- Handlers ---------

func (h *FarmerHandler) GetProfile(c *gin.Context) {
	id := c.Param("id")

	var farmer models.Farmer
	if err := h.db.First(&farmer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "farmer_not_found", "Farmer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_farmer", "Could not load farmer.")
		return
	}

	c.JSON(http.StatusOK, farmer)
}

func (h *FarmerHandler) FetchByEmail(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	var farmer models.Farmer
	if err := h.db.Where("email = ?", email).First(&farmer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "farmer_not_found", "Farmer not found for this email.")
			return
		}
		httperr.Internal(c, "failed_to_get_farmer", "Could not load farmer.")
		return
	}

	c.JSON(http.StatusOK, farmer)
}

func (h *FarmerHandler) UpdateProfile(c *gin.Context) {
	id := c.Param("id")

	var farmer models.Farmer
	if err := h.db.First(&farmer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "farmer_not_found", "Farmer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_farmer", "Could not load farmer.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		farmer.Name = *req.Name
	}
	if req.Email != nil {
		farmer.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		farmer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		farmer.Address = *req.Address
	}
	if req.Village != nil {
		farmer.Village = *req.Village
	}
	if req.Latitude != nil {
		farmer.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		farmer.Longitude = req.Longitude
	}
	if req.District != nil {
		farmer.District = *req.District
	}
	if req.State != nil {
		farmer.State = *req.State
	}
	if req.Pincode != nil {
		farmer.Pincode = *req.Pincode
	}
	if req.FarmSize != nil {
		farmer.FarmSize = *req.FarmSize
	}
	if req.CropType != nil {
		farmer.CropType = *req.CropType
	}
	if req.Experience != nil {
		farmer.Experience = *req.Experience
	}
	if req.EquipmentOwned != nil {
		farmer.EquipmentOwned = *req.EquipmentOwned
	}

	if err := h.db.Save(&farmer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_farmer", "Could not update farmer.")
		return
	}

	c.JSON(http.StatusOK, farmer)
}
