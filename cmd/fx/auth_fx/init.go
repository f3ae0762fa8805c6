package auth_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripcraft/internal/config"
	"tripcraft/internal/infra"
	"tripcraft/internal/services"
	mem "tripcraft/pkg/memcache"
	"tripcraft/pkg/utils"
)

var Module = fx.Provide(
	provideIdentity, provideStateSigner, provideAuthService)

func provideIdentity(cfg config.Config) services.IdentityProvider {
	return infra.NewGoogleIdentity(infra.NewGoogleOAuthConfig(cfg.OAuth), cfg.OAuth.UserInfoEndpoint, cfg.Upstream.Timeout)
}

func provideStateSigner(cfg config.Config) *utils.StateSigner {
	return utils.NewStateSigner(cfg.OAuth.StateSecret, cfg.OAuth.StateTTL)
}

func provideAuthService(identity services.IdentityProvider, signer *utils.StateSigner, states mem.LoginStateStore, cfg config.Config, log *zap.Logger) services.AuthServiceInterface {
	return services.NewAuthService(identity, signer, states, cfg.FrontendURL, log)
}
