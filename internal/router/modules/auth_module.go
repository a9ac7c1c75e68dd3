package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/4NDrew-42/ArtCine/internal/interface/http"
)

// AuthModule exposes the login endpoint.
// Public: POST /api/login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/login", m.Handler.Login)
}
