package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"simconnect/internal/infra"
	"simconnect/internal/seed"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(seed.EnsureSeeded),
)

func provideDB() *gorm.DB {
	return infra.InitDatabase()
}
