package infra

import (
	"context"
	"errors"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"tripcraft/internal/config"
	"tripcraft/internal/models/trip_models"
	"tripcraft/pkg/utils"
)

const ProviderGoogleOAuth = "google-oauth"

// GoogleIdentity performs the authorization-code exchange and reads the
// signed-in user's profile.
type GoogleIdentity struct {
	oauth            *oauth2.Config
	userInfoEndpoint string
	timeout          time.Duration
}

func NewGoogleOAuthConfig(cfg config.OAuthConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       cfg.Scopes,
		Endpoint:     google.Endpoint,
	}
}

// NewGoogleIdentity wraps oc. userInfoEndpoint overrides the API base URL and
// is empty in production.
func NewGoogleIdentity(oc *oauth2.Config, userInfoEndpoint string, timeout time.Duration) *GoogleIdentity {
	return &GoogleIdentity{oauth: oc, userInfoEndpoint: userInfoEndpoint, timeout: timeout}
}

func (g *GoogleIdentity) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (g *GoogleIdentity) Exchange(ctx context.Context, code string) (profile trip_models.UserProfile, err error) {
	start := time.Now()
	defer func() { observe(ProviderGoogleOAuth, "exchange", start, err) }()

	callCtx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	tok, err := g.oauth.Exchange(callCtx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			if retrieveErr.ErrorCode == "invalid_grant" {
				return profile, utils.InvalidInputf("authorization code rejected")
			}
			status := 0
			if retrieveErr.Response != nil {
				status = retrieveErr.Response.StatusCode
			}
			msg := retrieveErr.ErrorDescription
			if msg == "" {
				msg = retrieveErr.ErrorCode
			}
			if msg == "" {
				msg = "token exchange failed"
			}
			return profile, utils.NewUpstreamError(ProviderGoogleOAuth, status, msg)
		}
		return profile, classify(ctx, ProviderGoogleOAuth, err)
	}

	opts := []option.ClientOption{option.WithHTTPClient(g.oauth.Client(callCtx, tok))}
	if g.userInfoEndpoint != "" {
		opts = append(opts, option.WithEndpoint(g.userInfoEndpoint))
	}
	svc, err := oauth2api.NewService(callCtx, opts...)
	if err != nil {
		return profile, classify(ctx, ProviderGoogleOAuth, err)
	}

	info, err := svc.Userinfo.Get().Context(callCtx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return profile, utils.NewUpstreamError(ProviderGoogleOAuth, apiErr.Code, apiErr.Message)
		}
		return profile, classify(ctx, ProviderGoogleOAuth, err)
	}

	return trip_models.UserProfile{Name: info.Name, Email: info.Email}, nil
}
