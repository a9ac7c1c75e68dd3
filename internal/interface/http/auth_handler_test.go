package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4NDrew-42/ArtCine/internal/application"
	"github.com/4NDrew-42/ArtCine/internal/domain/entity"
	"github.com/4NDrew-42/ArtCine/internal/mocks"
	"github.com/4NDrew-42/ArtCine/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func newLoginFixture(t *testing.T) (*gin.Engine, *application.AuthService) {
	t.Helper()
	repo := mocks.NewUserRepository()
	hash, err := helpers.HashPassword("password1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		Username: "alice", Email: "alice@example.com", PasswordHash: hash,
	}))

	auth := application.NewAuthService(repo, helpers.NewJWTManager("test-secret", time.Hour), testLogger())
	r := gin.New()
	r.POST("/login", NewAuthHandler(auth, testLogger()).Login)
	return r, auth
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	engine, auth := newLoginFixture(t)

	w := postJSON(engine, "/login", `{"username":"alice","password":"password1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	e := decodeEnvelope(t, w)
	assert.True(t, e.Success)

	var data struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &data))
	assert.Equal(t, "alice", data.User.Username)
	require.NotEmpty(t, data.Token)
	assert.NotContains(t, w.Body.String(), "password")

	// The issued token authenticates follow-up requests.
	u, err := auth.Resolve(context.Background(), data.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	engine, _ := newLoginFixture(t)

	badUser := postJSON(engine, "/login", `{"username":"nobody","password":"password1"}`)
	badPass := postJSON(engine, "/login", `{"username":"alice","password":"password2"}`)

	assert.Equal(t, http.StatusUnauthorized, badUser.Code)
	assert.Equal(t, http.StatusUnauthorized, badPass.Code)

	// Unknown username and wrong password must carry the exact same message
	// so responses cannot be used to enumerate usernames.
	ue := decodeEnvelope(t, badUser)
	pe := decodeEnvelope(t, badPass)
	assert.Equal(t, "incorrect username or password", ue.Message)
	assert.Equal(t, ue.Message, pe.Message)
}

func TestLoginInvalidPayload(t *testing.T) {
	engine, _ := newLoginFixture(t)

	w := postJSON(engine, "/login", `{"username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(engine, "/login", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
