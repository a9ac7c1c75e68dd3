package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/4NDrew-42/ArtCine/internal/application"
	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
	"github.com/4NDrew-42/ArtCine/pkg/response"
	"github.com/4NDrew-42/ArtCine/pkg/validation"
)

const birthdayLayout = "2006-01-02"

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,alphanum"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"required,email"`
	Birthday string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
}

type updateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,alphanum"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Birthday *string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
}

// userJSON serializes a user for API responses; the password hash never
// leaves the server.
func userJSON(u *entity.User) gin.H {
	favorites := u.FavoriteMovies
	if favorites == nil {
		favorites = []string{}
	}
	out := gin.H{
		"id":              u.ID,
		"username":        u.Username,
		"email":           u.Email,
		"favorite_movies": favorites,
		"created_at":      u.CreatedAt,
		"updated_at":      u.UpdatedAt,
	}
	if u.Birthday != nil {
		out["birthday"] = u.Birthday.Format(birthdayLayout)
	}
	return out
}

func parseBirthday(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(birthdayLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func (h *UserHandler) respondUserErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrUsernameTaken):
		response.Error[any](c, http.StatusBadRequest, "username already exists", nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrMovieNotFound):
		response.Error[any](c, http.StatusNotFound, "movie not found", nil)
	default:
		h.Logger.WithError(err).Error("user operation failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}

// Register POST /api/users (public)
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: parseBirthday(req.Birthday),
	})
	if err != nil {
		h.respondUserErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, userJSON(u), "user registered", nil)
}

// List GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.respondUserErr(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userJSON(u))
	}
	response.Success(c, http.StatusOK, out, "users", nil)
}

// Get GET /api/users/:username
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.respondUserErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "user", nil)
}

// Update PUT /api/users/:username (owner only)
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.UpdateInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if req.Birthday != nil {
		in.Birthday = parseBirthday(*req.Birthday)
	}
	u, err := h.Svc.Update(c.Request.Context(), c.Param("username"), in)
	if err != nil {
		h.respondUserErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "user updated", nil)
}

// Delete DELETE /api/users/:username (owner only)
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("username")); err != nil {
		h.respondUserErr(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "user deleted", nil)
}

// AddFavorite POST /api/users/:username/movies/:movieID (owner only)
func (h *UserHandler) AddFavorite(c *gin.Context) {
	u, err := h.Svc.AddFavorite(c.Request.Context(), c.Param("username"), c.Param("movieID"))
	if err != nil {
		h.respondUserErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "favorite added", nil)
}

// RemoveFavorite DELETE /api/users/:username/movies/:movieID (owner only)
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	u, err := h.Svc.RemoveFavorite(c.Request.Context(), c.Param("username"), c.Param("movieID"))
	if err != nil {
		h.respondUserErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "favorite removed", nil)
}
