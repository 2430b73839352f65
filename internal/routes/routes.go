package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/farmtech/agrirent/internal/cache"
	"github.com/farmtech/agrirent/internal/config"
	"github.com/farmtech/agrirent/internal/handlers"
	infraRepo "github.com/farmtech/agrirent/internal/infra/repository"
	"github.com/farmtech/agrirent/internal/middleware"
	"github.com/farmtech/agrirent/internal/mlproxy"
	"github.com/farmtech/agrirent/internal/notify"
	"github.com/farmtech/agrirent/internal/storage"
	ucBooking "github.com/farmtech/agrirent/internal/usecase/booking"
	ucEquipment "github.com/farmtech/agrirent/internal/usecase/equipment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	equipmentRepo := infraRepo.NewEquipmentGormRepository(db)

	var sender notify.Sender = notify.NoopSender{}
	if cfg.SMSGatewayURL != "" {
		sender = notify.NewSMSClient(cfg.SMSGatewayURL, cfg.SMSApiKey, cfg.SMSSender)
	}
	notifier := notify.NewDispatcher(sender, notify.NewDeadLetterLog(db))

	listingCache := cache.New(cfg.RedisURL)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, notifier)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo)

	updateEquipmentUC := ucEquipment.NewUpdateEquipment(equipmentRepo)
	deleteEquipmentUC := ucEquipment.NewDeleteEquipment(equipmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	farmerHandler := handlers.NewFarmerHandler(db)

	equipmentHandler := handlers.NewEquipmentHandler(
		db,
		listingCache,
		updateEquipmentUC,
		deleteEquipmentUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateStatusUC,
		bookingRepo,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// FARMERS
		// ------------------------------
		api.GET("/farmers/profile/:id", farmerHandler.GetProfile)
		api.PUT("/farmers/profile/:id", farmerHandler.UpdateProfile)
		api.GET("/farmers/fetch/:email", farmerHandler.FetchByEmail)

		// ------------------------------
		// EQUIPMENTS
		// ------------------------------
		api.POST("/equipments/add/:farmerId", equipmentHandler.Add)
		api.POST("/equipments/add", equipmentHandler.Add)
		api.GET("/equipments/others/:farmerId", equipmentHandler.Others)
		api.GET("/equipments/my/:farmerId", equipmentHandler.My)
		api.GET("/equipments/:equipmentId", equipmentHandler.GetByID)
		api.PUT("/equipments/:equipmentId", equipmentHandler.Update)
		api.DELETE("/equipments/:equipmentId", equipmentHandler.Delete)

		if uploader != nil {
			imageHandler := handlers.NewEquipmentImageHandler(db, listingCache, uploader)
			api.POST("/equipments/:equipmentId/image", imageHandler.Upload)
		}

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.POST("/bookings/create", bookingHandler.Create)
		api.GET("/bookings/renter/:renterId", bookingHandler.ListByRenter)
		api.GET("/bookings/owner/:ownerId", bookingHandler.ListByOwner)
		api.PATCH("/bookings/:bookingId/status", bookingHandler.UpdateStatus)

		// ------------------------------
		// ML GATEWAY (optional)
		// ------------------------------
		if cfg.MLEnabled {
			mlHandler := handlers.NewMLHandler(mlproxy.NewForwarder(cfg.MLServiceBase))
			ml := api.Group("/ml")
			for _, path := range mlproxy.AllowedPaths {
				ml.POST("/"+path, mlHandler.Forward(path))
			}
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
		}
	}
}
