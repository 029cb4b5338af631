package repos

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"saleslens/internal/domain"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// windowCond scopes a query to a month window by comparing the ISO date
// prefix of date_of_sale against the window bounds as text. The end bound may
// name a nonexistent date like 2023-02-31; text comparison still caps the
// month without spilling into the next one.
const windowCond = `substr(date_of_sale, 1, 10) BETWEEN ? AND ?`

const saleColumns = `id, title, description, image, price, sold, date_of_sale`

// searchWhere builds the optional case-insensitive substring filter over
// title and description. Price is numeric and deliberately excluded from
// substring matching.
func searchWhere(q string) (string, []any) {
	if q == "" {
		return "", nil
	}
	pat := "%" + strings.ToLower(q) + "%"
	return ` WHERE (LOWER(title) LIKE ? OR LOWER(description) LIKE ?)`, []any{pat, pat}
}

// Search returns one page of matching records in insertion (rowid) order.
func (r *SaleRepo) Search(ctx context.Context, q string, limit, offset int) ([]domain.SaleRecord, error) {
	where, args := searchWhere(q)
	query := `SELECT ` + saleColumns + ` FROM sales` + where + ` ORDER BY rowid LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	out := []domain.SaleRecord{}
	err := r.db.SelectContext(ctx, &out, query, args...)
	return out, err
}

func (r *SaleRepo) CountMatching(ctx context.Context, q string) (int, error) {
	where, args := searchWhere(q)
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM sales`+where, args...)
	return n, err
}

func (r *SaleRepo) CountInWindow(ctx context.Context, w domain.Window) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM sales WHERE `+windowCond, w.Start, w.End)
	return n, err
}

func (r *SaleRepo) CountSold(ctx context.Context, w domain.Window, sold bool) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM sales WHERE `+windowCond+` AND sold = ?`,
		w.Start, w.End, sold)
	return n, err
}

// SumSoldPrices totals the price of sold records in the window. COALESCE
// keeps the result 0, never NULL, when nothing matches.
func (r *SaleRepo) SumSoldPrices(ctx context.Context, w domain.Window) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(price), 0) FROM sales WHERE `+windowCond+` AND sold = 1`,
		w.Start, w.End)
	return total, err
}

// PriceBuckets counts window records per price bucket. Buckets with no rows
// are absent from the result; callers zero-fill against the full label list.
func (r *SaleRepo) PriceBuckets(ctx context.Context, w domain.Window, boundaries []float64, overflow string) (map[string]int, error) {
	query := `SELECT ` + bucketCase(boundaries, overflow) + ` AS bucket, COUNT(*) AS count
  FROM sales WHERE ` + windowCond + ` GROUP BY bucket`

	var rows []struct {
		Bucket string `db:"bucket"`
		Count  int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, w.Start, w.End); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Bucket] = row.Count
	}
	return counts, nil
}

// bucketCase builds the CASE expression mapping price to a bucket label.
// Boundaries are checked highest-first so each price lands in exactly one
// half-open bucket; prices past the last boundary get the overflow label.
// Labels are numeric-only (see domain.BucketLabels), safe to inline.
func bucketCase(boundaries []float64, overflow string) string {
	labels := domain.BucketLabels(boundaries, overflow)

	var b strings.Builder
	b.WriteString("CASE")
	fmt.Fprintf(&b, " WHEN price >= %g THEN '%s'", boundaries[len(boundaries)-1], overflow)
	for i := len(boundaries) - 2; i >= 0; i-- {
		fmt.Fprintf(&b, " WHEN price >= %g THEN '%s'", boundaries[i], labels[i])
	}
	fmt.Fprintf(&b, " ELSE '%s' END", labels[0])
	return b.String()
}

func (r *SaleRepo) CategoryCounts(ctx context.Context, w domain.Window) ([]domain.CategoryCount, error) {
	out := []domain.CategoryCount{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT title AS category, COUNT(*) AS count FROM sales WHERE `+windowCond+` GROUP BY title`,
		w.Start, w.End)
	return out, err
}

// InsertMany bulk-inserts records in one transaction and returns how many
// went in. Used only by the import job.
func (r *SaleRepo) InsertMany(ctx context.Context, recs []domain.SaleRecord) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx, `
  INSERT INTO sales(id, title, description, image, price, sold, date_of_sale)
  VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, rec := range recs {
		if _, err := stmt.ExecContext(ctx,
			rec.ID, rec.Title, rec.Description, rec.Image, rec.Price, rec.Sold, rec.DateOfSale,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(recs), nil
}
