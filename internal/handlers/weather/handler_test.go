package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/controller"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/handlers/weather"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetWeather(ctx context.Context, city string) string {
	args := m.Called(ctx, city)
	return args.String(0)
}

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Apply(ctx context.Context, state models.Session, ev controller.Event) controller.Outcome {
	args := m.Called(ctx, state, ev)
	out, _ := args.Get(0).(controller.Outcome)
	return out
}

func TestGetWeather_NoCity(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockService{}
	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/weather", nil)
	require.NoError(t, err)
	c.Request = req

	h := weather.NewHandler(m, &mockSearcher{}, nil)
	h.GetWeather(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"city query parameter is required"}`, rec.Body.String())
}

func TestGetWeather_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := &mockService{}
	m.On("GetWeather", mock.Anything, "Kyiv").Return("⚠️ Weather data unavailable for 'Kyiv'").Once()
	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodGet, "/api/weather?city=Kyiv", nil)
	require.NoError(t, err)
	c.Request = req

	h := weather.NewHandler(m, &mockSearcher{}, nil)
	h.GetWeather(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"city":"Kyiv","report":"⚠️ Weather data unavailable for 'Kyiv'"}`, rec.Body.String())
}

func TestSearch_Extracted(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	ex := models.NewExtracted("Tokyo")
	s := &mockSearcher{}
	s.On("Apply", mock.Anything, models.Session{}, controller.Search{Input: "weather in Tokyo"}).
		Return(controller.Outcome{
			State:      models.Session{Query: "weather in Tokyo", WeatherReport: "report"},
			Extraction: &ex,
		}).Once()
	t.Cleanup(func() {
		s.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"weather in Tokyo"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h := weather.NewHandler(&mockService{}, s, nil)
	h.Search(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"query":"weather in Tokyo","city":"Tokyo","extracted":true,"report":"report"}`,
		rec.Body.String())
}

func TestSearch_Fallback(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	ex := models.NewFallback("Atlantis", nil)
	s := &mockSearcher{}
	s.On("Apply", mock.Anything, mock.Anything, mock.Anything).
		Return(controller.Outcome{
			State:      models.Session{Query: "Atlantis", WeatherReport: "⚠️ Weather data unavailable for 'Atlantis'"},
			Extraction: &ex,
		}).Once()

	req, err := http.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"Atlantis"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h := weather.NewHandler(&mockService{}, s, nil)
	h.Search(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"query":"Atlantis","city":"Atlantis","extracted":false,"report":"⚠️ Weather data unavailable for 'Atlantis'"}`,
		rec.Body.String())
}

func TestSearch_BadBody(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	s := &mockSearcher{}
	t.Cleanup(func() {
		s.AssertExpectations(t)
	})

	req, err := http.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h := weather.NewHandler(&mockService{}, s, nil)
	h.Search(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	weather.Health(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
