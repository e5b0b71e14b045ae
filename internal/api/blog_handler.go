package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/marketing-cms-api/internal/config"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/service"
	"github.com/marketing-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

// BlogHandler handles blog and comment endpoints
type BlogHandler struct {
	services  *service.Services
	validator *validation.Validator
	cfg       *config.Config
	log       zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(services *service.Services, validator *validation.Validator, cfg *config.Config, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		services:  services,
		validator: validator,
		cfg:       cfg,
		log:       log.With().Str("handler", "blog").Logger(),
	}
}

// List handles GET /v1/blogs. Public callers only see published posts;
// an ADMIN token lifts that restriction and enables the published filter.
func (h *BlogHandler) List(c *gin.Context) {
	page, limit := pageParams(c, h.cfg)

	filter := models.BlogFilter{
		Featured: boolQuery(c, "featured"),
		TagSlug:  c.Query("tag"),
		Search:   c.Query("search"),
	}
	if isAdmin(c) {
		filter.Published = boolQuery(c, "published")
	} else {
		published := true
		filter.Published = &published
	}

	blogs, pagination, err := h.services.Blog.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, ListData{Items: blogs, Pagination: pagination})
}

// Featured handles GET /v1/blogs/featured
func (h *BlogHandler) Featured(c *gin.Context) {
	limit := h.cfg.Content.FeaturedLimit
	if raw, ok := c.GetQuery("limit"); ok {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= h.cfg.Content.MaxPageSize {
			limit = v
		}
	}

	blogs, err := h.services.Blog.Featured(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, blogs)
}

// GetBySlug handles GET /v1/blogs/:slug and counts the read as a view
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	blog, err := h.services.Blog.GetBySlug(c.Request.Context(), c.Param("slug"), isAdmin(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, blog)
}

// GetByID handles GET /v1/blogs/id/:id without touching the view count
func (h *BlogHandler) GetByID(c *gin.Context) {
	blog, err := h.services.Blog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !blog.Published && !isAdmin(c) {
		respondError(c, http.StatusNotFound, "resource not found")
		return
	}

	respondOK(c, blog)
}

// Create handles POST /v1/blogs
func (h *BlogHandler) Create(c *gin.Context) {
	var req models.BlogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	blog, err := h.services.Blog.Create(c.Request.Context(), c.GetString(ctxKeyUserID), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, blog)
}

// Update handles PUT /v1/blogs/id/:id
func (h *BlogHandler) Update(c *gin.Context) {
	var req models.BlogUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	blog, err := h.services.Blog.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, blog)
}

// Delete handles DELETE /v1/blogs/id/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.services.Blog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"deleted": true})
}

// Comments handles GET /v1/blogs/id/:id/comments
func (h *BlogHandler) Comments(c *gin.Context) {
	comments, err := h.services.Blog.Comments(c.Request.Context(), c.Param("id"), !isAdmin(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, comments)
}

// AddComment handles POST /v1/blogs/id/:id/comments
func (h *BlogHandler) AddComment(c *gin.Context) {
	var req models.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	comment, err := h.services.Blog.AddComment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, comment)
}

// ApproveComment handles PUT /v1/blogs/id/:id/comments/:commentID
func (h *BlogHandler) ApproveComment(c *gin.Context) {
	comment, err := h.services.Blog.ApproveComment(c.Request.Context(), c.Param("commentID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, comment)
}
