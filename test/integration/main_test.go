//go:build integration
// +build integration

package integration

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/app"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fakeWeatherData = `{
	"location": {"name": "Tokyo"},
	"current": {"temp_c": 22, "wind_kph": 7.6, "condition": {"text": "Clear"}}
}`

const fakeCompletion = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"model": "gpt-3.5-turbo",
	"choices": [{"index": 0, "message": {"role": "assistant", "content": "  Tokyo \n"}, "finish_reason": "stop"}]
}`

func newFakeWeatherServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Query().Get("key") != "validApiKey":
			http.Error(w, "Invalid API key", http.StatusUnauthorized)
		case r.URL.Query().Get("q") != "Tokyo":
			http.Error(w, "No matching location found", http.StatusBadRequest)
		default:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(fakeWeatherData))
		}
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newFakeOpenAIServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fakeCompletion))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newConfig(t *testing.T, store string) config.Config {
	t.Helper()
	weatherSrv := newFakeWeatherServer(t)
	openaiSrv := newFakeOpenAIServer(t)

	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		redisHost = "localhost"
	}

	return config.Config{
		WeatherAPIKey: "validApiKey",
		WeatherAPIURL: weatherSrv.URL + "/v1/current.json",
		OpenAI: config.OpenAI{
			APIKey:  "sk-test",
			Model:   "gpt-3.5-turbo",
			BaseURL: openaiSrv.URL + "/v1",
		},
		Server:  config.Server{Address: ":0", ReadTimeout: 10},
		Breaker: config.Breaker{TimeInterval: 30, TimeTimeOut: 15, RepeatNumber: 5},
		Redis:   config.Redis{Host: redisHost, Port: "6379"},
		Session: config.Session{Store: store, TTL: time.Minute, SweepSpec: "@every 1m"},
	}
}

// startApp serves the router of a freshly initialized app on a test server.
func startApp(t *testing.T, cfg config.Config) (string, app.ServiceContainer) {
	t.Helper()
	application := app.New(cfg, zap.NewNop())

	sc, err := application.Init()
	if err != nil && cfg.Session.Store == config.SessionStoreRedis {
		t.Skipf("redis unavailable: %v", err)
	}
	require.NoError(t, err)

	srv := httptest.NewServer(sc.Router)
	t.Cleanup(func() {
		srv.Close()
		if sc.Redis != nil {
			_ = sc.Redis.Close()
		}
	})
	return srv.URL, sc
}
