package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/models"
)

// ErrMalformedPayload is returned when a 200 response lacks a required field.
var ErrMalformedPayload = errors.New("malformed weather payload")

// StatusError reports a non-200 answer from the weather API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather API error: status %d %s", e.Code, http.StatusText(e.Code))
}

type ClientWeatherAPI struct {
	APIKey string
	client HTTPClient
	logger *zap.Logger
	apiURL string
}

func NewClientWeatherAPI(apiKey, apiURL string, httpClient HTTPClient, logger *zap.Logger) *ClientWeatherAPI {
	return &ClientWeatherAPI{APIKey: apiKey, client: httpClient, logger: logger, apiURL: apiURL}
}

type currentResponse struct {
	Current *struct {
		TempC     *float64 `json:"temp_c"`
		WindKph   *float64 `json:"wind_kph"`
		Condition *struct {
			Text *string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

func (s *ClientWeatherAPI) requestURL(city string) (string, error) {
	u, err := url.Parse(s.apiURL)
	if err != nil {
		return "", fmt.Errorf("parse weather API url: %w", err)
	}
	q := u.Query()
	q.Set("key", s.APIKey)
	q.Set("q", city)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *ClientWeatherAPI) Fetch(ctx context.Context, city string) (models.WeatherData, error) {
	reqURL, err := s.requestURL(city)
	if err != nil {
		return models.WeatherData{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.WeatherData{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.WeatherData{}, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			s.logger.Warn("failed to close response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return models.WeatherData{}, &StatusError{Code: resp.StatusCode}
	}

	var raw currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return models.WeatherData{}, fmt.Errorf("decode weather payload: %w", err)
	}

	switch {
	case raw.Current == nil:
		return models.WeatherData{}, fmt.Errorf("%w: missing key current", ErrMalformedPayload)
	case raw.Current.TempC == nil:
		return models.WeatherData{}, fmt.Errorf("%w: missing key current.temp_c", ErrMalformedPayload)
	case raw.Current.WindKph == nil:
		return models.WeatherData{}, fmt.Errorf("%w: missing key current.wind_kph", ErrMalformedPayload)
	case raw.Current.Condition == nil || raw.Current.Condition.Text == nil:
		return models.WeatherData{}, fmt.Errorf("%w: missing key current.condition.text", ErrMalformedPayload)
	}

	return models.WeatherData{
		City:        city,
		Temperature: *raw.Current.TempC,
		Condition:   *raw.Current.Condition.Text,
		WindKph:     *raw.Current.WindKph,
	}, nil
}
