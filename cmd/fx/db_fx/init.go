package db_fx

import (
	"go.uber.org/fx"

	"closetshare/internal/infra"
)

var Module = fx.Provide(
	infra.LoadConfig,
	infra.InitLogger,
	infra.InitPostgresql,
	infra.InitAggregateStore,
)
