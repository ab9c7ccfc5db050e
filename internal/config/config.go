package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The remote backend is optional: when
// REMOTE_API_BASE_URL is empty the store starts directly in fallback mode.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	JWTSecret       string        // secret used to sign session tokens
	AccessTTLMin    int           // access token time-to-live in minutes
	RemoteBaseURL   string        // base URL of the remote persistence API (optional)
	RemoteTimeout   time.Duration // per-call timeout for the remote backend
	AssistantURL    string        // completion endpoint of the chat assistant (optional)
	AssistantKey    string        // API key for the chat assistant
	AssistantWindow int           // number of recent messages forwarded to the assistant
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:             must("APP_ENV"),
		Port:            must("APP_PORT"),
		JWTSecret:       must("JWT_SECRET"),
		AccessTTLMin:    mustInt("ACCESS_TOKEN_TTL_MIN"),
		RemoteBaseURL:   os.Getenv("REMOTE_API_BASE_URL"),
		RemoteTimeout:   time.Duration(atoi(getenv("REMOTE_TIMEOUT_MS", "3000"))) * time.Millisecond,
		AssistantURL:    os.Getenv("ASSISTANT_URL"),
		AssistantKey:    os.Getenv("ASSISTANT_API_KEY"),
		AssistantWindow: atoi(getenv("ASSISTANT_WINDOW", "10")),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
