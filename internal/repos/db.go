package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Sale records, append-only: rows are created by the import job and never
-- updated or deleted. date_of_sale is RFC3339 text so ISO date-prefix
-- comparison works for month windows.
CREATE TABLE IF NOT EXISTS sales(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  image TEXT NOT NULL,
  price NUMERIC NOT NULL,
  sold INTEGER NOT NULL DEFAULT 0,
  date_of_sale TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sales_date  ON sales(date_of_sale);
CREATE INDEX IF NOT EXISTS idx_sales_title ON sales(LOWER(title));
CREATE INDEX IF NOT EXISTS idx_sales_sold  ON sales(sold);
`
	_, err := db.Exec(schema)
	return err
}
