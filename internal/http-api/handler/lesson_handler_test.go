package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cursohub/internal/http-api/dto"
	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/service"
)

// MockLessonService mocks the LessonService interface
type MockLessonService struct {
	mock.Mock
}

func (m *MockLessonService) GetAll(ctx context.Context) ([]models.Lesson, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Lesson), args.Error(1)
}

func (m *MockLessonService) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lesson), args.Error(1)
}

func (m *MockLessonService) Create(ctx context.Context, lesson *models.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *MockLessonService) Update(ctx context.Context, lesson *models.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *MockLessonService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGetLessons_CatalogOrder(t *testing.T) {
	mockService := new(MockLessonService)
	handler := NewLessonHandler(mockService)
	router := setupRouter()
	router.GET("/lessons", handler.GetLessons)

	lessons := []models.Lesson{
		{ID: 1, Title: "Bienvenida", Module: models.ModuleIntroduccion, Order: 1},
		{ID: 2, Title: "Componentes", Module: models.ModuleIntroduccion, Order: 2},
		{ID: 3, Title: "Primer circuito", Module: models.ModuleProyecto1, Order: 1},
	}
	mockService.On("GetAll", mock.Anything).Return(lessons, nil)

	req, _ := http.NewRequest("GET", "/lessons", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []models.Lesson
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 3)
	assert.Equal(t, "Bienvenida", response[0].Title)
	mockService.AssertExpectations(t)
}

func TestGetLessonByID_NotFound(t *testing.T) {
	mockService := new(MockLessonService)
	handler := NewLessonHandler(mockService)
	router := setupRouter()
	router.GET("/lessons/:id", handler.GetLessonByID)

	mockService.On("GetByID", mock.Anything, int64(99)).Return(nil, service.ErrLessonNotFound)

	req, _ := http.NewRequest("GET", "/lessons/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestCreateLesson_Success(t *testing.T) {
	mockService := new(MockLessonService)
	handler := NewLessonHandler(mockService)
	router := setupRouter()
	router.POST("/lessons", handler.CreateLesson)

	mockService.On("Create", mock.Anything, mock.AnythingOfType("*models.Lesson")).Return(nil)

	reqBody := dto.CreateLessonRequest{
		Title:           "Bienvenida",
		Module:          models.ModuleIntroduccion,
		Order:           1,
		VideoURL:        "https://cdn.example.com/v/1.mp4",
		DurationMinutes: 12,
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("POST", "/lessons", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestCreateLesson_InvalidModule(t *testing.T) {
	mockService := new(MockLessonService)
	handler := NewLessonHandler(mockService)
	router := setupRouter()
	router.POST("/lessons", handler.CreateLesson)

	mockService.On("Create", mock.Anything, mock.AnythingOfType("*models.Lesson")).
		Return(service.ErrInvalidModule)

	reqBody := dto.CreateLessonRequest{Title: "Bienvenida", Module: "bootcamp"}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest("POST", "/lessons", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestDeleteLesson_NotFound(t *testing.T) {
	mockService := new(MockLessonService)
	handler := NewLessonHandler(mockService)
	router := setupRouter()
	router.DELETE("/lessons/:id", handler.DeleteLesson)

	mockService.On("Delete", mock.Anything, int64(42)).Return(service.ErrLessonNotFound)

	req, _ := http.NewRequest("DELETE", "/lessons/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}
