package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/4NDrew-42/ArtCine/internal/application"
	handlers "github.com/4NDrew-42/ArtCine/internal/interface/http"
	"github.com/4NDrew-42/ArtCine/internal/interface/middleware"
)

// MovieModule wires the read-only movie catalog, all behind authentication.
// Protected: GET /api/movies, GET /api/movies/:title,
//            GET /api/movies/genre/:name, GET /api/movies/director/:name
type MovieModule struct {
	Handler *handlers.MovieHandler
	Auth    *application.AuthService
}

func NewMovieModule(h *handlers.MovieHandler, auth *application.AuthService) *MovieModule {
	return &MovieModule{Handler: h, Auth: auth}
}

func (m *MovieModule) Register(rg *gin.RouterGroup) {
	movies := rg.Group("/movies")
	movies.Use(middleware.Auth(m.Auth))
	{
		movies.GET("", m.Handler.List)
		movies.GET("/genre/:name", m.Handler.Genre)
		movies.GET("/director/:name", m.Handler.Director)
		movies.GET("/:title", m.Handler.Get)
	}
}
