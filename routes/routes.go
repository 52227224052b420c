package routes

import (
	"salon-backend/config"
	"salon-backend/controllers"
	"salon-backend/repository"
	"salon-backend/services"
	"salon-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CorsAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
	}))

	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger())

	repo := repository.New(db)
	appointmentSvc := services.NewAppointmentService(db)
	seedSvc := services.NewSeedService(db)

	authCtl := controllers.NewAuthController(repo, cfg)
	clientCtl := controllers.NewClientController(repo)
	serviceCtl := controllers.NewServiceController(repo)
	appointmentCtl := controllers.NewAppointmentController(repo, appointmentSvc)
	statisticsCtl := controllers.NewStatisticsController(repo)
	settingsCtl := controllers.NewSettingsController(repo)
	healthCtl := controllers.NewHealthController(seedSvc)

	authRequired := utils.AuthMiddleware(cfg.JWT.Secret)

	// Auth
	r.POST("/token", authCtl.Token)
	r.POST("/register", authCtl.Register)
	r.GET("/users/me/", authRequired, authCtl.Me)

	// Clients
	r.POST("/clients/", clientCtl.CreateClient)
	r.GET("/clients/", clientCtl.GetClients)
	r.GET("/clients/:id", clientCtl.GetClient)

	// Services
	r.POST("/services/", serviceCtl.CreateService)
	r.GET("/services/", serviceCtl.GetServices)
	r.GET("/services/:id", serviceCtl.GetService)
	r.PUT("/services/:id", serviceCtl.UpdateService)

	// Appointments
	r.POST("/appointments/", appointmentCtl.CreateAppointment)
	r.GET("/appointments/", appointmentCtl.GetAppointments)
	r.GET("/appointments/:id", appointmentCtl.GetAppointment)
	r.PUT("/appointments/:id/status", appointmentCtl.UpdateAppointmentStatus)
	r.GET("/appointments-with-details/", appointmentCtl.GetAppointmentsWithDetails)
	r.GET("/client-appointments/:phone", appointmentCtl.GetClientAppointments)

	// Statistics and public settings
	r.GET("/statistics/", statisticsCtl.GetStatistics)
	r.GET("/settings/", settingsCtl.GetSettings)

	// Admin routes
	admin := r.Group("/admin", authRequired)
	{
		admin.GET("/all-appointments/", appointmentCtl.GetAllAppointments)
		admin.GET("/settings/", settingsCtl.GetSettings)
		admin.PUT("/settings/", settingsCtl.UpdateSettings)
	}

	// Operational
	r.GET("/health", healthCtl.HealthCheck)
	r.POST("/demo-data", healthCtl.CreateDemoData)

	return r
}
