package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every setting the service reads from the environment.
// It is loaded once in main and injected into handlers and services so the
// request path never touches os.Getenv.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Mail   MailConfig
	CORS   CORSConfig
}

// Load reads the full configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	mailCfg, err := loadMailConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		AI:     ai,
		Mail:   mailCfg,
		CORS:   loadCORSConfig(),
	}, nil
}

// ServerConfig describes the HTTP listen address.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5000"
	}

	if strings.Contains(port, ":") {
		// Accept ":5000" or "127.0.0.1:5000" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the Gemini text-generation settings.
type AIConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	Timeout         time.Duration
}

// Enabled reports whether the required API credential is present.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadAIConfig() (AIConfig, error) {
	temperature := float32(0.3)
	if override, err := parseOptionalFloat32Env("GEMINI_TEMPERATURE"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		temperature = *override
	}

	maxTokens := 300
	if override, err := parseOptionalIntEnv("GEMINI_MAX_OUTPUT_TOKENS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		maxTokens = *override
	}

	timeoutSeconds := 60
	if override, err := parseOptionalIntEnv("GEMINI_TIMEOUT_SECONDS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		timeoutSeconds = *override
	}

	return AIConfig{
		APIKey:          strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		Model:           getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		Temperature:     temperature,
		MaxOutputTokens: int32(maxTokens),
		Timeout:         time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// MailConfig describes the SMTP relay used by the contact form.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Enabled reports whether the relay credentials are present.
func (c MailConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

func loadMailConfig() (MailConfig, error) {
	port := 465
	if override, err := parseOptionalIntEnv("EMAIL_PORT"); err != nil {
		return MailConfig{}, err
	} else if override != nil {
		port = *override
	}

	return MailConfig{
		Host:     getEnvOrDefault("EMAIL_HOST", "smtp.gmail.com"),
		Port:     port,
		Username: strings.TrimSpace(os.Getenv("EMAIL_USER")),
		Password: os.Getenv("EMAIL_PASS"),
	}, nil
}

// CORSConfig holds the cross-origin allow-list.
type CORSConfig struct {
	// AllowedOrigins are matched exactly against the Origin header.
	AllowedOrigins []string
	// AllowedSuffixes admit any origin ending with one of these suffixes,
	// covering the hosting provider's preview deployments.
	AllowedSuffixes []string
}

// OriginAllowed reports whether the given Origin header value may call the API.
func (c CORSConfig) OriginAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	for _, suffix := range c.AllowedSuffixes {
		if strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}

func loadCORSConfig() CORSConfig {
	origins := []string{"http://localhost:10000"}
	if frontend := strings.TrimSpace(os.Getenv("FRONTEND_URL")); frontend != "" {
		origins = append(origins, frontend)
	}

	return CORSConfig{
		AllowedOrigins:  origins,
		AllowedSuffixes: []string{".vercel.app"},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalFloat32Env(key string) (*float32, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	result := float32(val)
	return &result, nil
}
