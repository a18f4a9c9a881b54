package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cursohub/internal/http-api/dto"
)

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = fw.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadFile_StoresAtRoot(t *testing.T) {
	dir := t.TempDir()
	handler := NewUploadHandler(dir, 1024)
	router := setupRouter()
	router.POST("/upload", handler.UploadFile)

	body, contentType := multipartBody(t, "file", "esquema.pdf", "pdf bytes")
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.UploadResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, strings.HasPrefix(response.FileURL, "/uploads/"))
	assert.NotContains(t, response.FileURL, "/videos/")
	assert.Contains(t, response.FileURL, "esquema.pdf")

	_, err := os.Stat(filepath.Join(dir, filepath.Base(response.FileURL)))
	assert.NoError(t, err)
}

func TestUploadVideo_StoresUnderVideos(t *testing.T) {
	dir := t.TempDir()
	handler := NewUploadHandler(dir, 1024)
	router := setupRouter()
	router.POST("/upload/video", handler.UploadVideo)

	body, contentType := multipartBody(t, "video", "leccion-1.mp4", "mp4 bytes")
	req, _ := http.NewRequest("POST", "/upload/video", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.UploadResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, strings.HasPrefix(response.FileURL, "/uploads/videos/"))

	_, err := os.Stat(filepath.Join(dir, "videos", filepath.Base(response.FileURL)))
	assert.NoError(t, err)
}

func TestUploadVideo_RequiresVideoField(t *testing.T) {
	handler := NewUploadHandler(t.TempDir(), 1024)
	router := setupRouter()
	router.POST("/upload/video", handler.UploadVideo)

	// Wrong multipart field name.
	body, contentType := multipartBody(t, "file", "leccion-1.mp4", "mp4 bytes")
	req, _ := http.NewRequest("POST", "/upload/video", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing video")
}

func TestUploadVideo_RejectsNonVideoExtension(t *testing.T) {
	handler := NewUploadHandler(t.TempDir(), 1024)
	router := setupRouter()
	router.POST("/upload/video", handler.UploadVideo)

	body, contentType := multipartBody(t, "video", "notes.txt", "text")
	req, _ := http.NewRequest("POST", "/upload/video", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadFile_TooLarge(t *testing.T) {
	handler := NewUploadHandler(t.TempDir(), 4)
	router := setupRouter()
	router.POST("/upload", handler.UploadFile)

	body, contentType := multipartBody(t, "file", "esquema.pdf", "more than four bytes")
	req, _ := http.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
