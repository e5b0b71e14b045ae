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

// AuthHandler handles authentication and account endpoints
type AuthHandler struct {
	services  *service.Services
	validator *validation.Validator
	cfg       *config.Config
	log       zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, validator *validation.Validator, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services:  services,
		validator: validator,
		cfg:       cfg,
		log:       log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	resp, err := h.services.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, resp)
}

// Profile handles GET /v1/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.services.Auth.Profile(c.Request.Context(), c.GetString(ctxKeyUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, user)
}

// CreateUser handles POST /v1/users
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req models.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		respondValidation(c, fieldErrors)
		return
	}

	user, err := h.services.Auth.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, user)
}

// ListUsers handles GET /v1/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	page, limit := pageParams(c, h.cfg)

	users, pagination, err := h.services.Auth.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, ListData{Items: users, Pagination: pagination})
}
