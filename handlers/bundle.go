package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every endpoint handler for route registration.
type HandlerBundle struct {
	// Auth endpoints.
	Signup gin.HandlerFunc
	Login  gin.HandlerFunc

	// Therapist directory and matching endpoints.
	ListTherapists gin.HandlerFunc
	AddTherapist   gin.HandlerFunc
	Match          gin.HandlerFunc

	// Static plan catalogue.
	ListPlans gin.HandlerFunc

	// Content endpoints.
	ListReviews gin.HandlerFunc
	AddReview   gin.HandlerFunc
	ListBlog    gin.HandlerFunc
	AddBlogPost gin.HandlerFunc
	BlogDetail  gin.HandlerFunc
	ListFAQ     gin.HandlerFunc
	AddFAQ      gin.HandlerFunc
	Contact     gin.HandlerFunc

	// Session booking.
	CreateSession gin.HandlerFunc

	// Liveness and diagnostics.
	Root        gin.HandlerFunc
	Diagnostics gin.HandlerFunc
}
