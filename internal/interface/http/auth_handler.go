package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/4NDrew-42/ArtCine/internal/application"
	"github.com/4NDrew-42/ArtCine/pkg/response"
	"github.com/4NDrew-42/ArtCine/pkg/validation"
)

type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/login
// Returns the user and a bearer token on success. Unknown username and wrong
// password produce byte-identical responses so usernames cannot be
// enumerated; the distinct reason is logged inside the auth service.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrBadUsername) || errors.Is(err, application.ErrBadPassword) {
			response.Error[any](c, http.StatusUnauthorized, "incorrect username or password", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  userJSON(u),
		"token": token,
	}, "login successful", map[string]any{"expires_at": exp})
}
