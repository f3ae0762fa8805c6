package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/oauth2/google"
)

// ErrMissingConfig is fatal: the process must not serve traffic without it.
var ErrMissingConfig = errors.New("missing required configuration")

var defaultScopes = []string{"openid", "profile", "email"}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	loadEnvFile()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	v.SetDefault("MAX_IMAGE_PIXELS", 89478485)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("OAUTH_STATE_TTL", "10m")
	v.SetDefault("SERPAPI_BASE_URL", "https://serpapi.com")
	v.SetDefault("SEARCH_CURRENCY", "INR")
	v.SetDefault("SEARCH_COUNTRY", "in")
	v.SetDefault("SEARCH_LANGUAGE", "en")
	v.SetDefault("GENERATION_PROVIDER", ProviderGemini)
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("UPSTREAM_TIMEOUT", "60s")
	v.SetDefault("PLACE_LOOKUP_WORKERS", 4)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func fromViper(v *viper.Viper) (Config, error) {
	var cfg Config

	cfg.Server.Port = v.GetString("PORT")
	cfg.Server.GinMode = v.GetString("GIN_MODE")
	cfg.Server.MaxUploadBytes = v.GetInt64("MAX_UPLOAD_BYTES")
	cfg.Server.MaxImagePixels = v.GetInt64("MAX_IMAGE_PIXELS")
	cfg.Log.Level = v.GetString("LOG_LEVEL")
	cfg.Log.Format = v.GetString("LOG_FORMAT")

	cfg.OAuth.ClientID = v.GetString("GOOGLE_CLIENT_ID")
	cfg.OAuth.ClientSecret = v.GetString("GOOGLE_CLIENT_SECRET")
	cfg.OAuth.RedirectURL = v.GetString("GOOGLE_REDIRECT_URL")
	cfg.OAuth.Scopes = defaultScopes
	cfg.OAuth.StateTTL = v.GetDuration("OAUTH_STATE_TTL")
	cfg.OAuth.UserInfoEndpoint = v.GetString("GOOGLE_USERINFO_ENDPOINT")
	if raw := v.GetString("GOOGLE_API_DATA"); raw != "" {
		if err := applyClientSecretJSON(&cfg, raw); err != nil {
			return Config{}, err
		}
	}
	cfg.OAuth.StateSecret = v.GetString("OAUTH_STATE_SECRET")
	if cfg.OAuth.StateSecret == "" {
		cfg.OAuth.StateSecret = cfg.OAuth.ClientSecret
	}

	cfg.FrontendURL = v.GetString("FRONTEND_URL")

	cfg.Search.APIKey = v.GetString("FLIGHT_SEARCH_API_KEY")
	cfg.Search.BaseURL = strings.TrimRight(v.GetString("SERPAPI_BASE_URL"), "/")
	cfg.Search.Currency = v.GetString("SEARCH_CURRENCY")
	cfg.Search.Country = v.GetString("SEARCH_COUNTRY")
	cfg.Search.Language = v.GetString("SEARCH_LANGUAGE")

	cfg.Generation.Provider = strings.ToLower(v.GetString("GENERATION_PROVIDER"))
	cfg.Generation.GeminiAPIKey = v.GetString("GEMINI_API_KEY")
	cfg.Generation.GeminiModel = v.GetString("GEMINI_MODEL")
	cfg.Generation.OpenAIAPIKey = v.GetString("OPENAI_API_KEY")
	cfg.Generation.OpenAIModel = v.GetString("OPENAI_MODEL")
	cfg.Generation.OpenAIBaseURL = v.GetString("OPENAI_BASE_URL")

	cfg.Upstream.Timeout = v.GetDuration("UPSTREAM_TIMEOUT")
	cfg.Workers.PlaceLookup = v.GetInt("PLACE_LOOKUP_WORKERS")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyClientSecretJSON accepts the "installed"/"web" client secret document
// downloaded from the Google console. Explicit GOOGLE_* variables win.
func applyClientSecretJSON(cfg *Config, raw string) error {
	oc, err := google.ConfigFromJSON([]byte(raw), defaultScopes...)
	if err != nil {
		return fmt.Errorf("%w: GOOGLE_API_DATA is not a client secret document: %v", ErrMissingConfig, err)
	}
	if cfg.OAuth.ClientID == "" {
		cfg.OAuth.ClientID = oc.ClientID
	}
	if cfg.OAuth.ClientSecret == "" {
		cfg.OAuth.ClientSecret = oc.ClientSecret
	}
	if cfg.OAuth.RedirectURL == "" && oc.RedirectURL != "" {
		cfg.OAuth.RedirectURL = strings.TrimRight(oc.RedirectURL, "/") + ":" + cfg.Server.Port + "/auth/google"
	}
	return nil
}

func validate(cfg Config) error {
	var missing []string
	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	require("GOOGLE_CLIENT_ID", cfg.OAuth.ClientID)
	require("GOOGLE_CLIENT_SECRET", cfg.OAuth.ClientSecret)
	require("GOOGLE_REDIRECT_URL", cfg.OAuth.RedirectURL)
	require("FRONTEND_URL", cfg.FrontendURL)
	require("FLIGHT_SEARCH_API_KEY", cfg.Search.APIKey)

	var keyName string
	switch cfg.Generation.Provider {
	case ProviderGemini:
		keyName = "GEMINI_API_KEY"
	case ProviderOpenAI:
		keyName = "OPENAI_API_KEY"
	default:
		return fmt.Errorf("%w: unsupported GENERATION_PROVIDER %q, use %q or %q",
			ErrMissingConfig, cfg.Generation.Provider, ProviderGemini, ProviderOpenAI)
	}
	require(keyName, cfg.Generation.APIKey())

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	if cfg.Server.MaxImagePixels < 1 {
		return fmt.Errorf("%w: MAX_IMAGE_PIXELS must be positive", ErrMissingConfig)
	}
	if cfg.Upstream.Timeout < 0 {
		return fmt.Errorf("%w: UPSTREAM_TIMEOUT must not be negative", ErrMissingConfig)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
