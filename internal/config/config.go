package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string
	LogMode  string // dev|prod

	// Credential is either a path to a service-account JSON file or the
	// JSON itself (GOOGLE_APPLICATION_CREDENTIALS_JSON takes precedence).
	Credential string

	FetchTimeout time.Duration

	CORSOrigins []string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		// container runtimes conventionally hand out PORT
		if p := os.Getenv("PORT"); p != "" {
			addr = ":" + p
		} else {
			addr = ":8080"
		}
	}
	cred := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if cred == "" {
		cred = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if cred == "" {
		cred = "credentials.json"
	}
	return Config{
		HTTPAddr:     addr,
		LogMode:      envOr("LOG_MODE", "dev"),
		Credential:   cred,
		FetchTimeout: envDuration("FETCH_TIMEOUT", 10*time.Second),
		CORSOrigins:  csvOr("CORS_ORIGINS", "*"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
