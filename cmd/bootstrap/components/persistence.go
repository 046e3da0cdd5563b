package components

import (
	"commerce-core/internal/infra/db"
	"commerce-core/internal/infra/readstore"
	"commerce-core/internal/infra/uow"
	"commerce-core/internal/pkg/config"
	"commerce-core/internal/usecase/queries"
	"commerce-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		NewUnitOfWork,
		NewCommandReads,
		NewStockStoreFactory,
		NewCartStoreFactory,
		fx.Annotate(
			readstore.NewBalanceReadStore,
			fx.As(new(queries.BalanceReadStore)),
		),
	),
)

func NewStockStoreFactory() queries.StockStoreFactory {
	return func(dbtx db.DBTX) queries.StockReadStore {
		return readstore.NewStockReadStore(dbtx)
	}
}

func NewCartStoreFactory() queries.CartStoreFactory {
	return func(dbtx db.DBTX) queries.CartStores {
		return queries.CartStores{
			Carts:    readstore.NewCartReadStore(dbtx),
			Products: readstore.NewProductReadStore(dbtx),
			Stocks:   readstore.NewStockReadStore(dbtx),
		}
	}
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, cfg.DB.LockTimeout)
}

func NewCommandReads(u shared.UnitOfWork) shared.CommandReads {
	return u.CommandReads()
}
