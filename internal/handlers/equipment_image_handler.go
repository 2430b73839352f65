package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farmtech/agrirent/internal/cache"
	"github.com/farmtech/agrirent/internal/httperr"
	"github.com/farmtech/agrirent/internal/models"
	"github.com/farmtech/agrirent/internal/storage"
)

const maxImageUploadBytes = 8 << 20

// EquipmentImageHandler stores a listing photo. The handler is only
// routed when an S3 bucket is configured.
type EquipmentImageHandler struct {
	db       *gorm.DB
	cache    *cache.Cache
	uploader *storage.Uploader
}

func NewEquipmentImageHandler(
	db *gorm.DB,
	listingCache *cache.Cache,
	uploader *storage.Uploader,
) *EquipmentImageHandler {
	return &EquipmentImageHandler{
		db:       db,
		cache:    listingCache,
		uploader: uploader,
	}
}

func (h *EquipmentImageHandler) Upload(c *gin.Context) {
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

	var eq models.Equipment
	if err := h.db.First(&eq, equipmentID).Error; err != nil {
		httperr.NotFound(c, "equipment_not_found", "Equipment not found.")
		return
	}

	if eq.OwnerID != farmerID {
		httperr.Forbidden(c, "not_equipment_owner", "Only the owner may upload an image.")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image form field is required.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		httperr.BadRequest(c, "unreadable_image", "Could not read the upload.")
		return
	}

	normalized, err := storage.NormalizeImage(data)
	if err != nil {
		if httperr.IsBusiness(err, "unsupported_image") {
			httperr.BadRequest(c, "unsupported_image", "Only JPEG and PNG uploads are supported.")
			return
		}
		httperr.Internal(c, "failed_to_process_image", "Could not process the image.")
		return
	}

	url, err := h.uploader.UploadEquipmentImage(
		c.Request.Context(),
		eq.ID,
		normalized,
		"image/webp",
	)
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "Could not store the image.")
		return
	}

	eq.Image = url
	if err := h.db.Save(&eq).Error; err != nil {
		httperr.Internal(c, "failed_to_update_equipment", "Could not save the image URL.")
		return
	}

	h.cache.Delete(c.Request.Context(), cache.MyEquipmentsKey(farmerID))

	c.JSON(http.StatusOK, gin.H{"image": url})
}
