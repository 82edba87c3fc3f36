package routes

import (
	"servicehub-server/internal/config"
	"servicehub-server/internal/handlers"
	"servicehub-server/internal/middleware"
	"servicehub-server/internal/models"
	"servicehub-server/internal/notifier"
	"servicehub-server/internal/session"
	"servicehub-server/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, s *store.Store, sessions *session.Store, n *notifier.Notifier, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(s, sessions, n, cfg)
	userHandler := handlers.NewUserHandler(s)
	appointmentHandler := handlers.NewAppointmentHandler(s)
	modificationHandler := handlers.NewModificationHandler(s)
	paymentHandler := handlers.NewPaymentHandler(s)
	serviceHandler := handlers.NewServiceHandler(s)
	workItemHandler := handlers.NewWorkItemHandler(s)
	notificationHandler := handlers.NewNotificationHandler(s)
	analyticsHandler := handlers.NewAnalyticsHandler(s)
	chatHandler := handlers.NewChatHandler()

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
			// Session restore is public: it only reflects the locally saved record.
			authRoutes.GET("/session", authHandler.GetSession)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.GetAppointmentsForUser)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleCustomer), appointmentHandler.BookAppointment)
			appointmentRoutes.PATCH("/:id/reschedule", appointmentHandler.RescheduleAppointment)
			appointmentRoutes.PATCH("/:id/cancel", appointmentHandler.CancelAppointment)
			appointmentRoutes.PATCH("/:id/start", middleware.RoleAuthMiddleware(models.RoleEmployee, models.RoleAdmin), appointmentHandler.StartAppointment)
			appointmentRoutes.PATCH("/:id/progress", middleware.RoleAuthMiddleware(models.RoleEmployee, models.RoleAdmin), appointmentHandler.UpdateProgress)
		}

		modificationRoutes := private.Group("/modifications")
		{
			modificationRoutes.GET("", modificationHandler.GetModificationsForUser)
			modificationRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleCustomer), modificationHandler.SubmitModification)
			modificationRoutes.GET("/counts", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee), modificationHandler.GetModificationCounts)
			modificationRoutes.PATCH("/:id/review", middleware.RoleAuthMiddleware(models.RoleAdmin), modificationHandler.ReviewModification)
			modificationRoutes.PATCH("/:id/start", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee), modificationHandler.StartModification)
			modificationRoutes.POST("/:id/checkpoints", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee), modificationHandler.AddCheckpoint)
			modificationRoutes.PATCH("/:id/checkpoints/:checkpointId/complete", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleEmployee), modificationHandler.CompleteCheckpoint)
		}

		paymentRoutes := private.Group("/payments")
		{
			paymentRoutes.GET("", paymentHandler.GetPaymentsForUser)
			paymentRoutes.POST("/:id/pay", middleware.RoleAuthMiddleware(models.RoleCustomer), paymentHandler.PayInvoice)
			paymentRoutes.GET("/stats", middleware.RoleAuthMiddleware(models.RoleAdmin), paymentHandler.GetPaymentStats)
			paymentRoutes.GET("/export", middleware.RoleAuthMiddleware(models.RoleAdmin), paymentHandler.ExportPayments)
		}

		serviceRoutes := private.Group("/services")
		{
			serviceRoutes.GET("", serviceHandler.GetServices)
			serviceRoutes.GET("/:id", serviceHandler.GetServiceByID)

			adminServiceRoutes := serviceRoutes.Group("")
			adminServiceRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminServiceRoutes.POST("", serviceHandler.CreateService)
				adminServiceRoutes.PUT("/:id", serviceHandler.UpdateService)
				adminServiceRoutes.PATCH("/:id/toggle", serviceHandler.ToggleService)
				adminServiceRoutes.DELETE("/:id", serviceHandler.DeleteService)
			}
		}

		workItemRoutes := private.Group("/work-items")
		workItemRoutes.Use(middleware.RoleAuthMiddleware(models.RoleEmployee, models.RoleAdmin))
		{
			workItemRoutes.GET("", workItemHandler.GetWorkItems)
			workItemRoutes.PATCH("/:id/timer/start", workItemHandler.StartTimer)
			workItemRoutes.PATCH("/:id/timer/pause", workItemHandler.PauseTimer)
			workItemRoutes.POST("/:id/time", workItemHandler.LogTime)
			workItemRoutes.PATCH("/:id/status", workItemHandler.UpdateStatus)
		}

		notificationRoutes := private.Group("/notifications")
		{
			notificationRoutes.GET("", notificationHandler.GetNotifications)
			notificationRoutes.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
			notificationRoutes.PATCH("/read-all", notificationHandler.MarkAllNotificationsRead)
		}

		analyticsRoutes := private.Group("/analytics")
		analyticsRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			analyticsRoutes.GET("/summary", analyticsHandler.GetSummary)
			analyticsRoutes.GET("/revenue", analyticsHandler.GetRevenue)
			analyticsRoutes.GET("/services", analyticsHandler.GetServiceShare)
			analyticsRoutes.GET("/employees", analyticsHandler.GetEmployeePerformance)
		}

		userRoutes := private.Group("/users")
		userRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			userRoutes.GET("", userHandler.GetUsers)
			userRoutes.POST("", userHandler.CreateUser)
			userRoutes.PUT("/:id", userHandler.UpdateUser)
			userRoutes.PATCH("/:id/toggle", userHandler.ToggleUserStatus)
			userRoutes.DELETE("/:id", userHandler.DeleteUser)
		}

		private.POST("/chat", chatHandler.Chat)
	}
}
