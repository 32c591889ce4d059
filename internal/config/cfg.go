package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Server struct {
	Address     string `envconfig:"SERVER_ADDRESS" default:":8080"`
	ReadTimeout int    `envconfig:"SERVER_TIMEOUT" default:"10"`
}

type OpenAI struct {
	APIKey  string `envconfig:"OPENAI_API_KEY"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`
	BaseURL string `envconfig:"OPENAI_BASE_URL"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"15"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type Redis struct {
	Host   string `envconfig:"REDIS_HOST" default:"localhost"`
	Port   string `envconfig:"REDIS_PORT" default:"6379"`
	DbType int    `envconfig:"REDIS_DB" default:"0"`
}

type Session struct {
	Store     string        `envconfig:"SESSION_STORE" default:"memory"`
	TTL       time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SweepSpec string        `envconfig:"SESSION_SWEEP_SPEC" default:"@every 5m"`
}

type Config struct {
	WeatherAPIKey string `envconfig:"WEATHER_API_KEY"`
	WeatherAPIURL string `envconfig:"WEATHER_API_URL" default:"http://api.weatherapi.com/v1/current.json"`

	// HTTPClientTimeout of zero leaves the outbound clients without a timeout.
	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"0s"`

	OpenAI  OpenAI
	Server  Server
	Breaker Breaker
	Redis   Redis
	Session Session

	LogsPath string `envconfig:"LOGS_PATH" default:"./log/weatherbot.log"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) RedisAddress() string {
	return c.Redis.Host + ":" + c.Redis.Port
}
