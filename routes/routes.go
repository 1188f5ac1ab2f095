package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LinamariaMartinez/eventMaster-sub000/controllers"
	"github.com/LinamariaMartinez/eventMaster-sub000/legacy"
	"github.com/LinamariaMartinez/eventMaster-sub000/middleware"
)

func SetupRoutes(r *gin.Engine, legacyStore *legacy.Store) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.POST("/google/login", controllers.GoogleLogin)
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthJWT())
		{
			protected.GET("/me", controllers.Me)
			protected.GET("/dashboard", controllers.GetDashboard)
		}

		events := api.Group("/events")
		{
			events.Use(middleware.AuthJWT())
			events.POST("", controllers.CreateEvent)
			events.GET("", controllers.ListEvents)
			events.GET("/:id", middleware.CheckEventOwner(), controllers.GetEventDetail)
			events.PUT("/:id", middleware.CheckEventOwner(), controllers.UpdateEvent)
			events.DELETE("/:id", middleware.CheckEventOwner(), controllers.DeleteEvent)
			events.POST("/:id/share", middleware.CheckEventOwner(), controllers.ShareEvent)
			events.GET("/:id/stats", middleware.CheckEventOwner(), controllers.GetEventStats)

			// Invitados del evento (solo el dueño)
			events.GET("/:id/guests", middleware.CheckEventOwner(), controllers.ListGuests)
			events.POST("/:id/guests", middleware.CheckEventOwner(), controllers.AddGuest)
			events.PUT("/:id/guests/:guestID", middleware.CheckEventOwner(), controllers.UpdateGuest)
			events.DELETE("/:id/guests/:guestID", middleware.CheckEventOwner(), controllers.DeleteGuest)
			events.POST("/:id/guests/:guestID/whatsapp-sent", middleware.CheckEventOwner(), controllers.MarkWhatsappSent)
			events.GET("/:id/guests/:guestID/whatsapp-link", middleware.CheckEventOwner(), controllers.GetWhatsAppLink)

			// Import / export
			events.POST("/:id/guests/import", middleware.CheckEventOwner(), controllers.ImportGuests)
			events.GET("/:id/guests/export", middleware.CheckEventOwner(), controllers.ExportGuestsCSV)
			events.POST("/:id/export", middleware.CheckEventOwner(), controllers.CreateExport)
		}
		api.GET("/exports/:job_id", middleware.AuthJWT(), controllers.GetExport)

		// Página pública de invitación + RSVP (sin login, con rate limit)
		api.GET("/events/public/:publicURL", controllers.GetPublicEvent)
		api.POST("/events/public/:publicURL/rsvp",
			middleware.RateLimitRSVP(), middleware.OptionalAuth(), controllers.SubmitRSVP)
		api.POST("/events/public/:publicURL/confirmations",
			middleware.RateLimitRSVP(), middleware.OptionalAuth(), controllers.SubmitConfirmation)

		api.POST("/uploads", middleware.AuthJWT(), controllers.UploadFile)

		// Prototipo viejo de invitaciones, aislado del modelo principal
		legacy.RegisterRoutes(api, legacyStore, middleware.AuthJWT())
	}
}
