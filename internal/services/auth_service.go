package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"tripcraft/internal/models/trip_models"
	mem "tripcraft/pkg/memcache"
	"tripcraft/pkg/utils"
)

// IdentityProvider is the OAuth half of the login flow. *infra.GoogleIdentity
// satisfies it.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (trip_models.UserProfile, error)
}

type AuthServiceInterface interface {
	LoginURL() (string, error)
	CompleteLogin(ctx context.Context, code, state string) (string, error)
}

type AuthService struct {
	identity    IdentityProvider
	signer      *utils.StateSigner
	states      mem.LoginStateStore
	frontendURL string
	log         *zap.Logger
}

func NewAuthService(identity IdentityProvider, signer *utils.StateSigner, states mem.LoginStateStore, frontendURL string, log *zap.Logger) AuthServiceInterface {
	return &AuthService{
		identity:    identity,
		signer:      signer,
		states:      states,
		frontendURL: frontendURL,
		log:         log.Named("auth"),
	}
}

// LoginURL returns the consent-screen URL carrying a fresh single-use state.
func (a *AuthService) LoginURL() (string, error) {
	state, nonce, err := a.signer.Issue()
	if err != nil {
		return "", fmt.Errorf("issue login state: %w", err)
	}
	a.states.Set(nonce, a.signer.TTL())
	return a.identity.AuthCodeURL(state), nil
}

// CompleteLogin validates state, exchanges code and returns the frontend URL
// the browser is sent to, carrying the user's name and email.
func (a *AuthService) CompleteLogin(ctx context.Context, code, state string) (string, error) {
	if state == "" {
		return "", utils.ErrInvalidOAuthState
	}
	nonce, err := a.signer.Verify(state)
	if err != nil {
		a.log.Info("rejected login state", zap.Error(err))
		return "", err
	}
	if !a.states.Consume(nonce) {
		return "", fmt.Errorf("%w: state already used or expired", utils.ErrInvalidOAuthState)
	}
	if code == "" {
		return "", utils.InvalidInputf("authorization code is required")
	}

	profile, err := a.identity.Exchange(ctx, code)
	if err != nil {
		a.log.Warn("google login failed", zap.Error(err))
		return "", err
	}

	return FrontendRedirect(a.frontendURL, profile), nil
}

// FrontendRedirect appends name and email to base, escaped.
func FrontendRedirect(base string, profile trip_models.UserProfile) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "name=" + url.QueryEscape(profile.Name) + "&email=" + url.QueryEscape(profile.Email)
}
