package routes

import (
	"net/http"
	"time"

	"bluerobins/handlers"
	"bluerobins/middleware"
	"bluerobins/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup and signin.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.Signup)
		api.POST("/signin", hb.Auth.Signin)
	}
}

// RegisterUserRoutes registers account profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/me", hb.User.Me)
		api.PUT("/me", hb.User.UpdateMe)
	}
}

// RegisterMentorRoutes registers mentor discovery, profile management
// and project listings.
func RegisterMentorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/mentors")
	{
		// Public discovery.
		api.GET("", hb.Mentor.List)
		api.GET("/:mentorId", hb.Mentor.Get)
		api.GET("/:mentorId/projects", hb.Mentor.ListProjects)
		api.GET("/:mentorId/slots", hb.Booking.AvailableSlots)

		// Mentor self-service.
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleMentor))
		protected.PUT("/profile", hb.Mentor.SaveProfile)
		protected.PUT("/availability", hb.Mentor.SaveAvailability)
		protected.POST("/projects", hb.Mentor.CreateProject)
		protected.PUT("/projects/:projectId", hb.Mentor.UpdateProject)
		protected.DELETE("/projects/:projectId", hb.Mentor.DeleteProject)
	}

	r.GET("/api/projects", hb.Mentor.ListAllProjects)
}

// RegisterBookingRoutes registers booking writes and the session
// lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("", hb.Booking.List)
		api.POST("/slot", hb.Booking.BookSlot)
		api.POST("/project", hb.Booking.BookProject)
		api.PUT("/:bookingId/complete", hb.Booking.Complete)
		api.PUT("/:bookingId/reschedule", hb.Booking.Reschedule)
	}
}

// RegisterCartRoutes registers the cart and checkout.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("", hb.Cart.Get)
		api.POST("/items", hb.Cart.AddItem)
		api.DELETE("/items/:itemId", hb.Cart.RemoveItem)
		api.POST("/checkout", hb.Cart.Checkout)
	}
}

// RegisterNoteRoutes registers weekly progress notes.
func RegisterNoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notes")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("", hb.Notes.Save)
		api.GET("", hb.Notes.ListMine)
		api.GET("/student/:studentId", middleware.RequireRole(models.RoleParent, models.RoleMentor), hb.Notes.ListForStudent)
	}
}

// RegisterChatRoutes registers messaging.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("/messages", hb.Chat.Send)
		api.GET("/:conversationId/messages", hb.Chat.History)
		api.GET("/:conversationId/stream", hb.Chat.Stream)
	}
}

// RegisterHealthRoute registers the liveness probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and global
// middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterMentorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterNoteRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r)
}
