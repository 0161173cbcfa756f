package routes

import (
	"time"

	"bettermann/handlers"
	"bettermann/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the signup/login endpoints. Auth routes get
// the Redis-backed fixed-window limit on top of the global limiter.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.Use(middleware.AuthRateLimitMiddleware())
		api.POST("/signup", hb.Signup)
		api.POST("/login", hb.Login)
	}
}

// RegisterTherapistRoutes registers the directory and matching endpoints.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/therapists", hb.ListTherapists)
		api.POST("/therapists", hb.AddTherapist)
		api.POST("/match", hb.Match)
	}
}

// RegisterContentRoutes registers plans, reviews, blog, FAQ and contact.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/plans", hb.ListPlans)
		api.GET("/reviews", hb.ListReviews)
		api.POST("/reviews", hb.AddReview)
		api.GET("/blog", hb.ListBlog)
		api.POST("/blog", hb.AddBlogPost)
		api.GET("/blog/:slug", hb.BlogDetail)
		api.GET("/faq", hb.ListFAQ)
		api.POST("/faq", hb.AddFAQ)
		api.POST("/contact", hb.Contact)
	}
}

// RegisterSessionRoutes registers the session booking endpoint.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/sessions", hb.CreateSession)
}

// RegisterHealthRoutes registers the liveness and diagnostics endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Root)
	r.GET("/test", hb.Diagnostics)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterTherapistRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterHealthRoutes(r, hb)
}
