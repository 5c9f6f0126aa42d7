package bootstrap

import (
	"github.com/akshattiwarii/Peakster/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	GeminiModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
