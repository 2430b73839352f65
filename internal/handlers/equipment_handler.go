package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farmtech/agrirent/internal/cache"
	"github.com/farmtech/agrirent/internal/httperr"
	"github.com/farmtech/agrirent/internal/httpresp"
	"github.com/farmtech/agrirent/internal/models"
	ucEquipment "github.com/farmtech/agrirent/internal/usecase/equipment"
)

const listingCacheTTL = 60 * time.Second

// ======================================================
// HANDLER
// ======================================================

type EquipmentHandler struct {
	db       *gorm.DB
	cache    *cache.Cache
	updateUC *ucEquipment.UpdateEquipment
	deleteUC *ucEquipment.DeleteEquipment
}

func NewEquipmentHandler(
	db *gorm.DB,
	listingCache *cache.Cache,
	updateUC *ucEquipment.UpdateEquipment,
	deleteUC *ucEquipment.DeleteEquipment,
) *EquipmentHandler {
	return &EquipmentHandler{
		db:       db,
		cache:    listingCache,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type EquipmentRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required"`
	PricePerHour float64 `json:"price_per_hour"`
	Image        string  `json:"image"`
}

// ======================================================
// CREATE
// ======================================================

func (h *EquipmentHandler) Add(c *gin.Context) {
	farmerID, ok := farmerIDFromPathOrQuery(c)
	if !ok {
		httperr.BadRequest(c, "invalid_farmer_id", "A numeric farmerId is required.")
		return
	}

	var farmer models.Farmer
	if err := h.db.First(&farmer, farmerID).Error; err != nil {
		httperr.NotFound(c, "farmer_not_found", "Farmer not found.")
		return
	}

	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	eq := models.Equipment{
		OwnerID:      farmer.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		PricePerHour: req.PricePerHour,
		Image:        req.Image,
	}

	if err := h.db.Create(&eq).Error; err != nil {
		httperr.Internal(c, "failed_to_create_equipment", "Could not create equipment.")
		return
	}

	h.cache.Delete(c.Request.Context(), cache.MyEquipmentsKey(farmer.ID))

	httpresp.Created(c, eq)
}

// ======================================================
// LISTINGS
// ======================================================

// Others lists every other farmer's equipment, the renter-side catalog.
func (h *EquipmentHandler) Others(c *gin.Context) {
	farmerID, ok := paramUint(c, "farmerId")
	if !ok {
		httperr.BadRequest(c, "invalid_farmer_id", "A numeric farmerId is required.")
		return
	}

	key := cache.OtherEquipmentsKey(farmerID)

	var equipments []models.Equipment
	if h.cache.GetJSON(c.Request.Context(), key, &equipments) {
		httpresp.List(c, equipments)
		return
	}

	if err := h.db.
		Preload("Owner").
		Where("owner_id <> ?", farmerID).
		Order("id ASC").
		Find(&equipments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_equipments", "Could not list equipments.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, equipments, listingCacheTTL)

	httpresp.List(c, equipments)
}

func (h *EquipmentHandler) My(c *gin.Context) {
	farmerID, ok := paramUint(c, "farmerId")
	if !ok {
		httperr.BadRequest(c, "invalid_farmer_id", "A numeric farmerId is required.")
		return
	}

	key := cache.MyEquipmentsKey(farmerID)

	var equipments []models.Equipment
	if h.cache.GetJSON(c.Request.Context(), key, &equipments) {
		httpresp.List(c, equipments)
		return
	}

	if err := h.db.
		Where("owner_id = ?", farmerID).
		Order("id ASC").
		Find(&equipments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_equipments", "Could not list equipments.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, equipments, listingCacheTTL)

	httpresp.List(c, equipments)
}

func (h *EquipmentHandler) GetByID(c *gin.Context) {
	id := c.Param("equipmentId")

	var eq models.Equipment
	if err := h.db.Preload("Owner").First(&eq, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "equipment_not_found", "Equipment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_equipment", "Could not load equipment.")
		return
	}

	httpresp.OK(c, eq)
}

// ======================================================
// UPDATE / DELETE (owner only)
// ======================================================

func (h *EquipmentHandler) Update(c *gin.Context) {
	equipmentID, ok := paramUint(c, "equipmentId")
	if !ok {
		httperr.BadRequest(c, "invalid_equipment_id", "A numeric equipmentId is required.")
		return
	}

	farmerID, ok := queryUint(c, "farmerId")
	if !ok {
		httperr.BadRequest(c, "invalid_farmer_id", "A numeric farmerId is required.")
		return
	}

	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	eq, err := h.updateUC.Execute(c.Request.Context(), ucEquipment.UpdateEquipmentInput{
		EquipmentID:  equipmentID,
		FarmerID:     farmerID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		PricePerHour: req.PricePerHour,
		Image:        req.Image,
	})
	if err != nil {
		writeEquipmentError(c, err)
		return
	}

	h.cache.Delete(c.Request.Context(), cache.MyEquipmentsKey(farmerID))

	httpresp.OK(c, eq)
}

func (h *EquipmentHandler) Delete(c *gin.Context) {
	equipmentID, ok := paramUint(c, "equipmentId")
	if !ok {
		httperr.BadRequest(c, "invalid_equipment_id", "A numeric equipmentId is required.")
		return
	}

	farmerID, ok := queryUint(c, "farmerId")
	if !ok {
		httperr.BadRequest(c, "invalid_farmer_id", "A numeric farmerId is required.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), equipmentID, farmerID); err != nil {
		writeEquipmentError(c, err)
		return
	}

	h.cache.Delete(c.Request.Context(), cache.MyEquipmentsKey(farmerID))

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func writeEquipmentError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "equipment_not_found"):
		httperr.NotFound(c, "equipment_not_found", "Equipment not found.")
	case httperr.IsBusiness(err, "not_equipment_owner"):
		httperr.Forbidden(c, "not_equipment_owner", "Only the owner may modify this equipment.")
	default:
		httperr.Internal(c, "equipment_error", "Could not modify equipment.")
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// farmerIDFromPathOrQuery supports both add routes the frontend uses:
// /add/{farmerId} and /add?farmerId=.
func farmerIDFromPathOrQuery(c *gin.Context) (uint, bool) {
	if c.Param("farmerId") != "" {
		return paramUint(c, "farmerId")
	}
	return queryUint(c, "farmerId")
}
