package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/service"
	"github.com/marketing-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

// SiteHandler handles the marketing-site content endpoints: feature
// cards, testimonials, and the navigation menu
type SiteHandler struct {
	services  *service.Services
	validator *validation.Validator
	log       zerolog.Logger
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(services *service.Services, validator *validation.Validator, log zerolog.Logger) *SiteHandler {
	return &SiteHandler{
		services:  services,
		validator: validator,
		log:       log.With().Str("handler", "site").Logger(),
	}
}

// ListFeatures handles GET /v1/features
func (h *SiteHandler) ListFeatures(c *gin.Context) {
	features, err := h.services.Feature.List(c.Request.Context(), !isAdmin(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, features)
}

// CreateFeature handles POST /v1/features
func (h *SiteHandler) CreateFeature(c *gin.Context) {
	var req models.FeatureCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	feature, err := h.services.Feature.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, feature)
}

// UpdateFeature handles PUT /v1/features/:id
func (h *SiteHandler) UpdateFeature(c *gin.Context) {
	var req models.FeatureUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	feature, err := h.services.Feature.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, feature)
}

// DeleteFeature handles DELETE /v1/features/:id
func (h *SiteHandler) DeleteFeature(c *gin.Context) {
	if err := h.services.Feature.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"deleted": true})
}

// ListTestimonials handles GET /v1/testimonials
func (h *SiteHandler) ListTestimonials(c *gin.Context) {
	filter := models.TestimonialFilter{Featured: boolQuery(c, "featured")}
	if isAdmin(c) {
		filter.Published = boolQuery(c, "published")
	} else {
		published := true
		filter.Published = &published
	}

	testimonials, err := h.services.Testimonial.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, testimonials)
}

// CreateTestimonial handles POST /v1/testimonials
func (h *SiteHandler) CreateTestimonial(c *gin.Context) {
	var req models.TestimonialCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	testimonial, err := h.services.Testimonial.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, testimonial)
}

// UpdateTestimonial handles PUT /v1/testimonials/:id
func (h *SiteHandler) UpdateTestimonial(c *gin.Context) {
	var req models.TestimonialUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	testimonial, err := h.services.Testimonial.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, testimonial)
}

// DeleteTestimonial handles DELETE /v1/testimonials/:id
func (h *SiteHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.services.Testimonial.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"deleted": true})
}

// Menu handles GET /v1/menu
func (h *SiteHandler) Menu(c *gin.Context) {
	tree, err := h.services.Menu.Tree(c.Request.Context(), !isAdmin(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, tree)
}

// CreateMenuItem handles POST /v1/menu
func (h *SiteHandler) CreateMenuItem(c *gin.Context) {
	var req models.MenuItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	item, err := h.services.Menu.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, item)
}

// UpdateMenuItem handles PUT /v1/menu/:id
func (h *SiteHandler) UpdateMenuItem(c *gin.Context) {
	var req models.MenuItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	item, err := h.services.Menu.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, item)
}

// DeleteMenuItem handles DELETE /v1/menu/:id
func (h *SiteHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.services.Menu.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"deleted": true})
}
