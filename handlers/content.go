package handlers

import (
	"errors"
	"net/http"

	"bettermann/models"
	"bettermann/services/content"
	"bettermann/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler exposes the reviews, blog, FAQ and contact endpoints.
type ContentHandler struct {
	Service content.Service
}

func NewContentHandler(svc content.Service) *ContentHandler {
	return &ContentHandler{Service: svc}
}

// ListReviewsHandler handles GET /api/reviews.
func (h *ContentHandler) ListReviewsHandler(c *gin.Context) {
	items, err := h.Service.ListReviews(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddReviewHandler handles POST /api/reviews.
func (h *ContentHandler) AddReviewHandler(c *gin.Context) {
	var in models.ReviewInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.Service.AddReview(c.Request.Context(), in)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListBlogHandler handles GET /api/blog with an optional exact tag filter.
func (h *ContentHandler) ListBlogHandler(c *gin.Context) {
	items, err := h.Service.ListBlogPosts(c.Request.Context(), c.Query("tag"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddBlogPostHandler handles POST /api/blog.
func (h *ContentHandler) AddBlogPostHandler(c *gin.Context) {
	var in models.BlogPostInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.Service.AddBlogPost(c.Request.Context(), in)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// BlogDetailHandler handles GET /api/blog/:slug.
func (h *ContentHandler) BlogDetailHandler(c *gin.Context) {
	post, err := h.Service.GetBlogPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrPostNotFound) {
			utils.JSONError(c, http.StatusNotFound, "not_found", "Not found")
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListFAQHandler handles GET /api/faq.
func (h *ContentHandler) ListFAQHandler(c *gin.Context) {
	items, err := h.Service.ListFAQs(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddFAQHandler handles POST /api/faq.
func (h *ContentHandler) AddFAQHandler(c *gin.Context) {
	var in models.FAQInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.Service.AddFAQ(c.Request.Context(), in)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ContactHandler handles POST /api/contact.
func (h *ContentHandler) ContactHandler(c *gin.Context) {
	var in models.ContactMessageInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.Service.SubmitContact(c.Request.Context(), in)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "received"})
}
