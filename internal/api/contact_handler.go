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

// ContactHandler handles the public contact form and the admin inbox
type ContactHandler struct {
	services  *service.Services
	validator *validation.Validator
	cfg       *config.Config
	log       zerolog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(services *service.Services, validator *validation.Validator, cfg *config.Config, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		services:  services,
		validator: validator,
		cfg:       cfg,
		log:       log.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	contact, err := h.services.Contact.Submit(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, contact)
}

// List handles GET /v1/contact
func (h *ContactHandler) List(c *gin.Context) {
	page, limit := pageParams(c, h.cfg)

	status := c.Query("status")
	if status != "" && !models.ValidContactStatuses[status] {
		respondValidation(c, []validation.FieldError{
			{Field: "status", Message: "must be one of UNREAD READ REPLIED ARCHIVED", Value: status},
		})
		return
	}

	contacts, pagination, err := h.services.Contact.List(c.Request.Context(), models.ContactFilter{Status: status}, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, ListData{Items: contacts, Pagination: pagination})
}

// UpdateStatus handles PUT /v1/contact/:id
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req models.ContactStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	contact, err := h.services.Contact.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, contact)
}

// Delete handles DELETE /v1/contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.services.Contact.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"deleted": true})
}
