package cockroach

import (
	"context"
	"embed"

	crdbpgxv5 "github.com/cockroachdb/cockroach-go/v2/crdb/crdbpgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nicolasparada/go-db"
)

//go:embed migrations/*.sql
var MigrationsFS embed.FS

type Cockroach struct {
	db   *db.DB
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Cockroach {
	return &Cockroach{
		db:   db.New(pool),
		pool: pool,
	}
}

// executeTx runs fn in a transaction, retrying it on serialization
// failures. fn may run more than once.
func (c *Cockroach) executeTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return crdbpgxv5.ExecuteTx(ctx, c.pool, pgx.TxOptions{}, fn)
}
