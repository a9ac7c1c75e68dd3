package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4NDrew-42/ArtCine/internal/application"
	"github.com/4NDrew-42/ArtCine/internal/mocks"
	"github.com/4NDrew-42/ArtCine/pkg/validation"
)

func newUserEngine(t *testing.T) (*gin.Engine, *mocks.UserRepository) {
	t.Helper()
	validation.Init()
	repo := mocks.NewUserRepository()
	h := NewUserHandler(application.NewUserService(repo, testLogger()), testLogger())

	r := gin.New()
	r.POST("/users", h.Register)
	r.GET("/users/:username", h.Get)
	r.PUT("/users/:username", h.Update)
	r.DELETE("/users/:username", h.Delete)
	r.POST("/users/:username/movies/:movieID", h.AddFavorite)
	r.DELETE("/users/:username/movies/:movieID", h.RemoveFavorite)
	return r, repo
}

func doJSON(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	engine, _ := newUserEngine(t)

	w := postJSON(engine, "/users", `{"username":"alice","password":"password1","email":"alice@example.com","birthday":"1990-04-02"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	e := decodeEnvelope(t, w)
	assert.True(t, e.Success)
	assert.Contains(t, string(e.Data), `"username":"alice"`)
	assert.Contains(t, string(e.Data), `"birthday":"1990-04-02"`)
	// The digest must never appear in a response.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterDuplicate(t *testing.T) {
	engine, _ := newUserEngine(t)

	w := postJSON(engine, "/users", `{"username":"alice","password":"password1","email":"a@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(engine, "/users", `{"username":"alice","password":"password2","email":"b@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username already exists", decodeEnvelope(t, w).Message)
}

func TestRegisterValidation(t *testing.T) {
	engine, _ := newUserEngine(t)

	tests := []struct {
		name string
		body string
	}{
		{"short password", `{"username":"alice","password":"short","email":"a@example.com"}`},
		{"bad email", `{"username":"alice","password":"password1","email":"nope"}`},
		{"bad birthday", `{"username":"alice","password":"password1","email":"a@example.com","birthday":"02/04/1990"}`},
		{"missing username", `{"password":"password1","email":"a@example.com"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(engine, "/users", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetUser(t *testing.T) {
	engine, _ := newUserEngine(t)

	w := postJSON(engine, "/users", `{"username":"alice","password":"password1","email":"a@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(engine, http.MethodGet, "/users/alice", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(engine, http.MethodGet, "/users/nobody", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser(t *testing.T) {
	engine, _ := newUserEngine(t)

	w := postJSON(engine, "/users", `{"username":"alice","password":"password1","email":"a@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(engine, http.MethodPut, "/users/alice", `{"email":"new@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decodeEnvelope(t, w).Data), `"email":"new@example.com"`)

	w = doJSON(engine, http.MethodPut, "/users/nobody", `{"email":"new@example.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	engine, _ := newUserEngine(t)

	w := postJSON(engine, "/users", `{"username":"alice","password":"password1","email":"a@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(engine, http.MethodDelete, "/users/alice", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(engine, http.MethodGet, "/users/alice", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteRoutes(t *testing.T) {
	engine, repo := newUserEngine(t)
	repo.ValidMovies = map[string]bool{"movie-1": true}

	w := postJSON(engine, "/users", `{"username":"alice","password":"password1","email":"a@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(engine, http.MethodPost, "/users/alice/movies/movie-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decodeEnvelope(t, w).Data), `"favorite_movies":["movie-1"]`)

	w = doJSON(engine, http.MethodPost, "/users/alice/movies/no-such-movie", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(engine, http.MethodDelete, "/users/alice/movies/movie-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decodeEnvelope(t, w).Data), `"favorite_movies":[]`)
}
