package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/4NDrew-42/ArtCine/internal/application"
	handlers "github.com/4NDrew-42/ArtCine/internal/interface/http"
	"github.com/4NDrew-42/ArtCine/internal/interface/middleware"
)

// UserModule wires user registration, reads and the owner-only self-service
// routes.
// Public:    POST /api/users
// Protected: GET /api/users, GET /api/users/:username
// Owner:     PUT/DELETE /api/users/:username,
//            POST/DELETE /api/users/:username/movies/:movieID
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    *application.AuthService
}

func NewUserModule(h *handlers.UserHandler, auth *application.AuthService) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Register)

	authed := rg.Group("/users")
	authed.Use(middleware.Auth(m.Auth))
	{
		authed.GET("", m.Handler.List)
		authed.GET("/:username", m.Handler.Get)

		// Self-service: ownership is checked after authentication.
		owner := authed.Group("/:username")
		owner.Use(middleware.RequireSelf())
		{
			owner.PUT("", m.Handler.Update)
			owner.DELETE("", m.Handler.Delete)
			owner.POST("/movies/:movieID", m.Handler.AddFavorite)
			owner.DELETE("/movies/:movieID", m.Handler.RemoveFavorite)
		}
	}
}
