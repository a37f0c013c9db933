package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iotonix/osams/internal/middleware"
	"github.com/Iotonix/osams/internal/models"
	"github.com/Iotonix/osams/internal/service"
	appErrors "github.com/Iotonix/osams/pkg/errors"
	"github.com/Iotonix/osams/pkg/response"
)

// AuthHandler exposes login and profile endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Authenticate and receive a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Profile godoc
// @Summary Return the authenticated user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	info, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, info, nil)
}
