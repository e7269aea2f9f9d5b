package mailfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gymdesk/internal/config"
	"gymdesk/internal/services"
	"gymdesk/pkg/memcache"
)

var Module = fx.Provide(
	provideMailService, provideResetTokens)

func provideMailService(cfg *config.Config, log *zap.Logger) services.IMailService {
	return services.NewSMTPMailService(cfg, log)
}

func provideResetTokens() memcache.ResetTokenStore {
	return memcache.NewResetTokens()
}
