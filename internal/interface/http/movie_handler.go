package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/4NDrew-42/ArtCine/internal/application"
	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
	"github.com/4NDrew-42/ArtCine/pkg/response"
)

type MovieHandler struct {
	Svc    *application.MovieService
	Logger *logrus.Logger
}

func NewMovieHandler(svc *application.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{Svc: svc, Logger: logger}
}

func movieJSON(m *entity.Movie) gin.H {
	actors := m.Actors
	if actors == nil {
		actors = []string{}
	}
	return gin.H{
		"id":          m.ID,
		"title":       m.Title,
		"description": m.Description,
		"genre": gin.H{
			"name":        m.Genre.Name,
			"description": m.Genre.Description,
		},
		"director": gin.H{
			"name":  m.Director.Name,
			"bio":   m.Director.Bio,
			"birth": m.Director.Birth,
			"death": m.Director.Death,
		},
		"actors":     actors,
		"image_path": m.ImagePath,
		"featured":   m.Featured,
	}
}

func (h *MovieHandler) respondErr(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, application.ErrMovieNotFound),
		errors.Is(err, application.ErrGenreNotFound),
		errors.Is(err, application.ErrDirectorNotFound):
		response.Error[any](c, http.StatusNotFound, notFoundMsg, nil)
	default:
		h.Logger.WithError(err).Error("movie operation failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}

// List GET /api/movies
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.respondErr(c, err, "")
		return
	}
	out := make([]gin.H, 0, len(movies))
	for _, m := range movies {
		out = append(out, movieJSON(m))
	}
	response.Success(c, http.StatusOK, out, "movies", nil)
}

// Get GET /api/movies/:title
func (h *MovieHandler) Get(c *gin.Context) {
	m, err := h.Svc.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		h.respondErr(c, err, "movie not found")
		return
	}
	response.Success(c, http.StatusOK, movieJSON(m), "movie", nil)
}

// Genre GET /api/movies/genre/:name
func (h *MovieHandler) Genre(c *gin.Context) {
	g, err := h.Svc.GetGenreByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondErr(c, err, "genre not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"name": g.Name, "description": g.Description}, "genre", nil)
}

// Director GET /api/movies/director/:name
func (h *MovieHandler) Director(c *gin.Context) {
	d, err := h.Svc.GetDirectorByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondErr(c, err, "director not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"name":  d.Name,
		"bio":   d.Bio,
		"birth": d.Birth,
		"death": d.Death,
	}, "director", nil)
}
