package controllers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadByLink(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/upload-by-link", UploadByLinkInput{
		Link: "https://example.com/photo.jpg",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ImageURL string `json:"imageUrl"`
	}
	decodeJSON(t, w, &body)
	assert.Equal(t, "https://res.example.com/image.jpg", body.ImageURL)
	assert.Equal(t, "https://example.com/photo.jpg", env.uploader.gotURL)
}

func TestUploadByLinkUpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	env.uploader.err = errors.New("upstream down")

	w := env.do(t, http.MethodPost, "/api/upload-by-link", UploadByLinkInput{
		Link: "https://example.com/photo.jpg",
	}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error uploading image")
}

func TestUploadMultipart(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "photo.jpg")
	require.NoError(t, err)
	payload := []byte("fake-image-bytes")
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://res.example.com/image.jpg")
	assert.Equal(t, len(payload), env.uploader.gotSize, "all bytes must reach the uploader")
}

func TestUploadMissingFile(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
