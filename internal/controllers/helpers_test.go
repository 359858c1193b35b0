package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/auth"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/middleware"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/models"
	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret = "test-signing-secret"
	testCost   = 4 // bcrypt.MinCost keeps the suite fast
)

// fakeUploader satisfies upload.Uploader without the network.
type fakeUploader struct {
	url     string
	err     error
	gotURL  string
	gotSize int
}

func (f *fakeUploader) UploadFromReader(_ context.Context, r io.Reader) (string, error) {
	b, _ := io.ReadAll(r)
	f.gotSize = len(b)
	return f.url, f.err
}

func (f *fakeUploader) UploadFromURL(_ context.Context, remoteURL string) (string, error) {
	f.gotURL = remoteURL
	return f.url, f.err
}

type testEnv struct {
	users    *store.MemoryUserStore
	places   *store.MemoryPlaceStore
	bookings *store.MemoryBookingStore
	uploader *fakeUploader
	router   *gin.Engine
}

// newTestEnv wires the controllers against memory stores with the same
// route table main registers.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:    store.NewMemoryUserStore(),
		places:   store.NewMemoryPlaceStore(),
		bookings: store.NewMemoryBookingStore(),
		uploader: &fakeUploader{url: "https://res.example.com/image.jpg"},
	}

	log := zap.NewNop()
	authCtl := NewAuthController(env.users, testSecret, testCost, log)
	placeCtl := NewPlaceController(env.places, log)
	bookingCtl := NewBookingController(env.bookings, env.places, log)
	uploadCtl := NewUploadController(env.uploader, log)

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/register", authCtl.Register)
		api.POST("/login", authCtl.Login)
		api.GET("/profile", authCtl.Profile)
		api.POST("/logout", authCtl.Logout)

		api.POST("/upload-by-link", uploadCtl.UploadByLink)
		api.POST("/upload", uploadCtl.Upload)

		api.GET("/places", placeCtl.ListAll)
		api.GET("/places/:id", placeCtl.GetByID)
		api.POST("/cancel-booking", bookingCtl.Cancel)

		protected := api.Group("")
		protected.Use(middleware.Auth(testSecret))
		{
			protected.POST("/places", placeCtl.Create)
			protected.GET("/user-places", placeCtl.ListMine)
			protected.PUT("/places", placeCtl.Update)
			protected.POST("/bookings", bookingCtl.Create)
			protected.GET("/bookings", bookingCtl.ListMine)
		}
	}

	env.router = router
	return env
}

// do sends a JSON request, attaching the session cookie when token is
// non-empty.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// newUser stores a user with a hashed password and returns it with a valid
// session token.
func (e *testEnv) newUser(t *testing.T, name, email, password string) (*models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(password, testCost)
	require.NoError(t, err)

	u := &models.User{Name: name, Email: email, Password: hash}
	require.NoError(t, e.users.Create(context.Background(), u))

	token, err := auth.SignToken(testSecret, u.ID, u.Email)
	require.NoError(t, err)
	return u, token
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
