package infra

import (
	"context"
	"database/sql"

	"github.com/samber/lo"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"

	"github.com/visitstats/dashboard/internal/model"
)

const loadBatchSize = 500

// OpenSQLite opens a private in-memory SQLite database. The pool is pinned to a single
// connection since every new connection to :memory: starts out empty.
func OpenSQLite() (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxLifetime(0)
	sqldb.SetConnMaxIdleTime(0)

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// LoadVisits creates table and fills it with visits in one transaction. Food costs are
// stored as INTEGER minor units, the form repo.Visit expects from a SQLite source.
func LoadVisits(ctx context.Context, db *bun.DB, table string, visits []*model.Visit) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `CREATE TABLE ? (
			visit_id   INTEGER PRIMARY KEY,
			restaurant TEXT NOT NULL,
			customer   TEXT,
			dish       TEXT NOT NULL,
			food_cost  INTEGER NOT NULL
		)`, bun.Ident(table))
		if err != nil {
			return err
		}

		for _, chunk := range lo.Chunk(visits, loadBatchSize) {
			_, err := tx.NewInsert().
				Model(&chunk).
				ModelTableExpr("?", bun.Ident(table)).
				Exec(ctx)
			if err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, "CREATE INDEX ? ON ? (restaurant)", bun.Ident(table+"_restaurant_idx"), bun.Ident(table))
		return err
	})
}
