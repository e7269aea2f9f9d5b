package dbfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymdesk/internal/config"
	"gymdesk/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	return infra.InitPostgresql(cfg.DatabaseURL, log)
}
