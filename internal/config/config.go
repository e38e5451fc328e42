package config

import (
	"os"
	"strings"
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Store  StoreConfig
	GenAI  GenAIConfig
	Flags  FlagsConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port      string
	PublicDir string
}

type AuthConfig struct {
	Secret   string
	TokenTTL string
}

type StoreConfig struct {
	DataDir string
}

type GenAIConfig struct {
	APIKey string
	Model  string
}

// FlagsConfig carries the LaunchDarkly client-side ID handed to the browser.
// Flag evaluation happens entirely in the client SDK; the server never holds
// a server-side SDK key.
type FlagsConfig struct {
	ClientSideID string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:      getenv("PORT", "3000"),
			PublicDir: getenv("PUBLIC_DIR", "public"),
		},
		Auth: AuthConfig{
			Secret:   os.Getenv("SECRET_KEY"),
			TokenTTL: getenv("TOKEN_TTL", "24h"),
		},
		Store: StoreConfig{
			DataDir: getenv("DATA_DIR", "data"),
		},
		GenAI: GenAIConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getenv("GEMINI_MODEL", "gemini-3-flash-preview"),
		},
		Flags: FlagsConfig{
			ClientSideID: os.Getenv("LD_CLIENT_SIDE_ID"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
