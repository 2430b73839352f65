package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/farmtech/agrirent/internal/config"
	"github.com/farmtech/agrirent/internal/httperr"
	"github.com/farmtech/agrirent/internal/models"
	"github.com/farmtech/agrirent/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`

	FullName string `json:"full_name"`
	Gender   string `json:"gender"`
	Dob      string `json:"dob"`

	Address  string `json:"address"`
	Village  string `json:"village"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`

	FarmSize       string `json:"farm_size"`
	CropType       string `json:"crop_type"`
	Experience     string `json:"experience"`
	EquipmentOwned string `json:"equipment_owned"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	phone := strings.TrimSpace(req.Phone)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Farmer{}).Where("phone = ?", phone).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "phone_already_registered", "Phone already registered.")
		return
	}

	h.db.Model(&models.Farmer{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "Email already registered.")
		return
	}

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	farmer := models.Farmer{
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hashed),
		Name:         req.Name,
		FullName:     req.FullName,
		Gender:       req.Gender,

		Address:  req.Address,
		Village:  req.Village,
		District: req.District,
		State:    req.State,
		Pincode:  req.Pincode,

		FarmSize:       req.FarmSize,
		CropType:       req.CropType,
		Experience:     req.Experience,
		EquipmentOwned: req.EquipmentOwned,

		Role: "FARMER",
	}

	if req.Dob != "" {
		if dob, err := time.Parse("2006-01-02", req.Dob); err == nil {
			farmer.Dob = &dob
		}
	}

	if err := h.db.Create(&farmer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_farmer", "Could not create farmer.")
		return
	}

	token, err := h.generateToken(&farmer)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Registration successful",
		"farmerId": farmer.ID,
		"token":    token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	phone := strings.TrimSpace(req.Phone)

	var farmer models.Farmer
	if err := h.db.Where("phone = ?", phone).First(&farmer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "internal_error", "Login failed.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(farmer.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.generateToken(&farmer)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"farmerId": farmer.ID,
		"name":     farmer.Name,
		"email":    farmer.Email,
		"phone":    farmer.Phone,
		"address":  farmer.Address,
		"token":    token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(farmer *models.Farmer) (string, error) {
	claims := jwt.MapClaims{
		"sub":  farmer.ID,
		"role": farmer.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
