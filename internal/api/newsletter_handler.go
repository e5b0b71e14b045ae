package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketing-cms-api/internal/config"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/service"
	"github.com/marketing-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

// NewsletterHandler handles subscription endpoints
type NewsletterHandler struct {
	services  *service.Services
	validator *validation.Validator
	cfg       *config.Config
	log       zerolog.Logger
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(services *service.Services, validator *validation.Validator, cfg *config.Config, log zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		services:  services,
		validator: validator,
		cfg:       cfg,
		log:       log.With().Str("handler", "newsletter").Logger(),
	}
}

// Subscribe handles POST /v1/newsletter
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	sub, err := h.services.Newsletter.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, sub)
}

// Unsubscribe handles DELETE /v1/newsletter
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	if err := h.services.Newsletter.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"unsubscribed": true})
}

// List handles GET /v1/newsletter
func (h *NewsletterHandler) List(c *gin.Context) {
	page, limit := pageParams(c, h.cfg)
	filter := models.NewsletterFilter{Active: boolQuery(c, "active")}

	subs, pagination, err := h.services.Newsletter.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, ListData{Items: subs, Pagination: pagination})
}
