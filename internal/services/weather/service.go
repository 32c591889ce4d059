package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/models"
)

const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

type client interface {
	Fetch(ctx context.Context, city string) (models.WeatherData, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type outcomeRecorder interface {
	ObserveWeather(outcome string)
}

type ServiceProvider struct {
	logger   *zap.Logger
	client   client
	recorder outcomeRecorder
}

func NewService(logger *zap.Logger, cl client, recorder outcomeRecorder) *ServiceProvider {
	return &ServiceProvider{logger: logger, client: cl, recorder: recorder}
}

// GetWeather never fails: every outcome is rendered as a displayable string.
func (s *ServiceProvider) GetWeather(ctx context.Context, city string) string {
	data, err := s.client.Fetch(ctx, city)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			s.logger.Info("weather data unavailable",
				zap.String("city", city), zap.Int("status_code", statusErr.Code))
			s.observe(OutcomeUnavailable)
			return UnavailableMessage(city)
		}
		s.logger.Error("weather fetch failed", zap.String("city", city), zap.Error(err))
		s.observe(OutcomeError)
		return ErrorMessage(err)
	}

	s.observe(OutcomeOK)
	return FormatReport(city, data)
}

func (s *ServiceProvider) observe(outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveWeather(outcome)
	}
}

func FormatReport(city string, data models.WeatherData) string {
	return fmt.Sprintf("📍 **%s**\n\n%s %s\n🌡️ %s°C\n💨 %s km/h",
		city,
		ConditionIcon(data.Condition), data.Condition,
		formatNumber(data.Temperature),
		formatNumber(data.WindKph),
	)
}

func UnavailableMessage(city string) string {
	return fmt.Sprintf("⚠️ Weather data unavailable for '%s'", city)
}

func ErrorMessage(err error) string {
	return fmt.Sprintf("❌ Error: %v", err)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
