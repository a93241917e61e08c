package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotos_UploadAndGet(t *testing.T) {
	a := newAPITest(t)

	w := a.multipart("/v1/photos?folder=criancas", a.servant, nil, pngBytes)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	photo := decode[models.Photo](t, w)
	assert.Equal(t, "image/png", photo.ContentType)

	w = a.do(http.MethodGet, photo.URL, a.parent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	etag := w.Header().Get("ETag")
	assert.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, photo.URL, nil)
	req.Header.Set("Authorization", "Bearer "+a.parent)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotModified, w.Code)
}

func TestPhotos_Rejects(t *testing.T) {
	a := newAPITest(t)

	assert.Equal(t, http.StatusBadRequest, a.multipart("/v1/photos?folder=../etc", a.servant, nil, pngBytes).Code)
	assert.Equal(t, http.StatusBadRequest, a.multipart("/v1/photos?folder=tios", a.servant, nil, nil).Code)
	assert.Equal(t, http.StatusBadRequest, a.multipart("/v1/photos?folder=tios", a.servant, nil, []byte("plain text")).Code)

	big := append(append([]byte{}, pngBytes...), make([]byte, 1<<20)...)
	assert.Equal(t, http.StatusRequestEntityTooLarge, a.multipart("/v1/photos?folder=tios", a.servant, nil, big).Code)

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/v1/photos/000000000000000000000000", a.parent, nil).Code)
}
