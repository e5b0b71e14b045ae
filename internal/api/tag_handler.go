package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/service"
	"github.com/marketing-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

// TagHandler handles tag endpoints
type TagHandler struct {
	services  *service.Services
	validator *validation.Validator
	log       zerolog.Logger
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(services *service.Services, validator *validation.Validator, log zerolog.Logger) *TagHandler {
	return &TagHandler{
		services:  services,
		validator: validator,
		log:       log.With().Str("handler", "tag").Logger(),
	}
}

// List handles GET /v1/tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.services.Tag.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, tags)
}

// Create handles POST /v1/tags
func (h *TagHandler) Create(c *gin.Context) {
	var req models.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	tag, err := h.services.Tag.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, tag)
}
