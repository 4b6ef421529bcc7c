package components

import (
	"ad-approval-service/internal/infra/readstore"
	"ad-approval-service/internal/infra/repository"
	sqlc "ad-approval-service/internal/infra/sqlc/generated"
	"ad-approval-service/internal/usecase/commands"
	"ad-approval-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("repository/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AdListingReadQueries)),
		),
		fx.Annotate(
			readstore.NewAdListingReadStore,
			fx.As(new(queries.AdListingReadStore)),
		),
	),
)

var writeModule = fx.Module("repository/write",
	fx.Provide(
		// AdListing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.AdListingQueries)),
		),
		fx.Annotate(
			repository.NewAdListingRepository,
			fx.As(new(commands.AdListingRepository)),
		),
		// PaymentEvent
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.PaymentEventWriteQueries)),
		),
		fx.Annotate(
			repository.NewPaymentEventRepository,
			fx.As(new(commands.PaymentEventLedger)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
