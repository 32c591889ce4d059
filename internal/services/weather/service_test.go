package weather

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/models"
)

type mockAPIClient struct {
	mock.Mock
}

func (m *mockAPIClient) Fetch(
	ctx context.Context,
	city string,
) (models.WeatherData, error) {
	args := m.Called(ctx, city)
	data, ok := args.Get(0).(models.WeatherData)

	if !ok {
		return models.WeatherData{}, args.Error(1)
	}

	return data, args.Error(1)
}

type recorderStub struct {
	outcomes []string
}

func (r *recorderStub) ObserveWeather(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

func TestServiceProvider_GetWeather(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		m := &mockAPIClient{}
		m.On("Fetch", mock.Anything, "Paris").Return(models.WeatherData{
			City: "Paris", Temperature: 20, Condition: "Partly cloudy", WindKph: 10,
		}, nil).Once()
		rec := &recorderStub{}

		t.Cleanup(func() {
			m.AssertExpectations(t)
		})

		report := NewService(zap.NewNop(), m, rec).GetWeather(ctx, "Paris")

		assert.Contains(t, report, "Paris")
		assert.Contains(t, report, "☁️")
		assert.Contains(t, report, "20")
		assert.Contains(t, report, "10")
		assert.Equal(t, "📍 **Paris**\n\n☁️ Partly cloudy\n🌡️ 20°C\n💨 10 km/h", report)
		assert.Equal(t, []string{OutcomeOK}, rec.outcomes)
	})

	t.Run("NotFound", func(t *testing.T) {
		m := &mockAPIClient{}
		m.On("Fetch", mock.Anything, "Nowhere").Return(models.WeatherData{}, &StatusError{Code: 404}).Once()
		rec := &recorderStub{}

		report := NewService(zap.NewNop(), m, rec).GetWeather(ctx, "Nowhere")

		assert.Equal(t, "⚠️ Weather data unavailable for 'Nowhere'", report)
		assert.Equal(t, []string{OutcomeUnavailable}, rec.outcomes)
		m.AssertExpectations(t)
	})

	t.Run("WrappedStatusIsStillUnavailable", func(t *testing.T) {
		m := &mockAPIClient{}
		m.On("Fetch", mock.Anything, "Nowhere").
			Return(models.WeatherData{}, fmt.Errorf("WeatherAPI unavailable: %w", &StatusError{Code: 400})).Once()

		report := NewService(zap.NewNop(), m, nil).GetWeather(ctx, "Nowhere")

		assert.Equal(t, UnavailableMessage("Nowhere"), report)
	})

	t.Run("NetworkError", func(t *testing.T) {
		m := &mockAPIClient{}
		m.On("Fetch", mock.Anything, "Paris").Return(models.WeatherData{}, errors.New("dial tcp: no route to host")).Once()
		rec := &recorderStub{}

		var report string
		assert.NotPanics(t, func() {
			report = NewService(zap.NewNop(), m, rec).GetWeather(ctx, "Paris")
		})

		assert.Contains(t, report, "dial tcp: no route to host")
		assert.Equal(t, "❌ Error: dial tcp: no route to host", report)
		assert.Equal(t, []string{OutcomeError}, rec.outcomes)
	})
}

func TestFormatReport_Fractions(t *testing.T) {
	report := FormatReport("Lviv", models.WeatherData{Temperature: -3.5, Condition: "Light snow", WindKph: 12.2})
	assert.Equal(t, "📍 **Lviv**\n\n❄️ Light snow\n🌡️ -3.5°C\n💨 12.2 km/h", report)
}
