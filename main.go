// File: bettermann/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bettermann/config"
	"bettermann/database"
	"bettermann/database/repository"
	"bettermann/handlers"
	"bettermann/middleware"
	"bettermann/routes"
	"bettermann/services/auth"
	"bettermann/services/booking"
	"bettermann/services/content"
	"bettermann/services/directory"
	"bettermann/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// A nil database handle keeps the service up with data endpoints
	// answering store_unavailable.
	db := database.InitDB()
	defer database.Disconnect()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// The one store gateway every service shares.
	store := repository.NewMongoStore(db)

	// services.
	authService := &auth.DefaultAuthService{Store: store}
	directoryService := &directory.DefaultDirectoryService{Store: store}
	contentService := &content.DefaultContentService{Store: store}
	bookingService := &booking.DefaultBookingService{Store: store}

	// handlers.
	authHandler := handlers.NewAuthHandler(authService)
	therapistHandler := handlers.NewTherapistHandler(directoryService)
	contentHandler := handlers.NewContentHandler(contentService)
	sessionHandler := handlers.NewSessionHandler(bookingService)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(store)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Signup: authHandler.SignupHandler,
		Login:  authHandler.LoginHandler,

		ListTherapists: therapistHandler.ListTherapistsHandler,
		AddTherapist:   therapistHandler.AddTherapistHandler,
		Match:          therapistHandler.MatchHandler,

		ListPlans: handlers.ListPlansHandler,

		ListReviews: contentHandler.ListReviewsHandler,
		AddReview:   contentHandler.AddReviewHandler,
		ListBlog:    contentHandler.ListBlogHandler,
		AddBlogPost: contentHandler.AddBlogPostHandler,
		BlogDetail:  contentHandler.BlogDetailHandler,
		ListFAQ:     contentHandler.ListFAQHandler,
		AddFAQ:      contentHandler.AddFAQHandler,
		Contact:     contentHandler.ContactHandler,

		CreateSession: sessionHandler.CreateSessionHandler,

		Root:        handlers.RootHandler,
		Diagnostics: diagnosticsHandler.TestHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
