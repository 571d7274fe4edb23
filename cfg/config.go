package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type BookingAPIConfig struct {
	BaseURL string
}

type ObservabilityConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

type Config struct {
	AppEnv             string
	AppPort            string
	RedisConfig        RedisConfig
	BookingAPIConfig   BookingAPIConfig
	Observability      ObservabilityConfig
	SessionTTLMinutes  int
	NotifPollSeconds   int
	HTTPTimeoutSeconds int
}

func Load() (*Config, error) {
	var errs []error

	err := godotenv.Load()
	if err != nil {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := mustEnv("REDIS_PASSWORD", &errs)

	apiBaseURL := mustEnv("API_BASE_URL", &errs)

	otlpEndpoint := mustEnv("OTEL_EXPORTER_OTLP_ENDPOINT", &errs)

	sessionTTL := mustIntEnv("SESSION_TTL_MINUTES", &errs)
	notifPoll := mustIntEnv("NOTIF_POLL_SECONDS", &errs)
	httpTimeout := mustIntEnv("HTTP_TIMEOUT_SECONDS", &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		BookingAPIConfig: BookingAPIConfig{
			BaseURL: apiBaseURL,
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: otlpEndpoint,
			ServiceName:  "skybook",
		},
		SessionTTLMinutes:  sessionTTL,
		NotifPollSeconds:   notifPoll,
		HTTPTimeoutSeconds: httpTimeout,
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func mustIntEnv(key string, errs *[]error) int {
	value := mustEnv(key, errs)
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
	}
	return n
}
