// Package config loads the immutable runtime configuration from the environment.
package config

import (
	"time"
)

type Config struct {
	Server      ServerConfig
	Log         LogConfig
	OAuth       OAuthConfig
	FrontendURL string
	Search      SearchConfig
	Generation  GenerationConfig
	Upstream    UpstreamConfig
	Workers     WorkersConfig
	CORS        CORSConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	MaxUploadBytes int64
	// MaxImagePixels caps width*height of an uploaded photo before it is decoded.
	MaxImagePixels int64
}

type LogConfig struct {
	Level  string
	Format string
}

type OAuthConfig struct {
	ClientID         string
	ClientSecret     string
	RedirectURL      string
	Scopes           []string
	StateSecret      string
	StateTTL         time.Duration
	UserInfoEndpoint string
}

type SearchConfig struct {
	APIKey   string
	BaseURL  string
	Currency string
	Country  string
	Language string
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type GenerationConfig struct {
	Provider      string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
}

// APIKey returns the key of the selected provider.
func (g GenerationConfig) APIKey() string {
	if g.Provider == ProviderOpenAI {
		return g.OpenAIAPIKey
	}
	return g.GeminiAPIKey
}

// Model returns the model name of the selected provider.
func (g GenerationConfig) Model() string {
	if g.Provider == ProviderOpenAI {
		return g.OpenAIModel
	}
	return g.GeminiModel
}

type UpstreamConfig struct {
	// Timeout bounds every single upstream call; zero disables it.
	Timeout time.Duration
}

type WorkersConfig struct {
	PlaceLookup int
}

type CORSConfig struct {
	AllowedOrigins []string
}
