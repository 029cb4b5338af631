package repos_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"saleslens/internal/domain"
	"saleslens/internal/repos"
)

func testdb(t *testing.T) (*sqlx.DB, *repos.SaleRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// each new pooled conn would get its own empty :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db, repos.NewSaleRepo(db)
}

func insert(t *testing.T, repo *repos.SaleRepo, recs []domain.SaleRecord) {
	t.Helper()
	if _, err := repo.InsertMany(context.Background(), recs); err != nil {
		t.Fatal(err)
	}
}

func TestInsertManyAndCount(t *testing.T) {
	_, repo := testdb(t)
	ctx := context.Background()

	n, err := repo.InsertMany(ctx, []domain.SaleRecord{
		{ID: "s1", Title: "A", Description: "x", Image: "i", Price: 10, Sold: true, DateOfSale: "2023-03-05T00:00:00Z"},
		{ID: "s2", Title: "B", Description: "y", Image: "i", Price: 20, Sold: false, DateOfSale: "2023-03-06T00:00:00Z"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("want 2 inserted, got %d", n)
	}

	total, err := repo.CountMatching(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Fatalf("want 2 records, got %d", total)
	}

	// empty batch is a no-op
	n, err = repo.InsertMany(ctx, nil)
	if err != nil || n != 0 {
		t.Fatalf("empty insert: n=%d err=%v", n, err)
	}
}

// The end bound "day 31" is compared as text, so a nonexistent date like
// 2023-02-31 caps February without leaking March rows in.
func TestWindowTextBoundsShortMonth(t *testing.T) {
	_, repo := testdb(t)
	ctx := context.Background()
	insert(t, repo, []domain.SaleRecord{
		{ID: "feb", Title: "Feb", Description: "d", Image: "i", Price: 1, DateOfSale: "2023-02-28T23:59:00Z"},
		{ID: "mar", Title: "Mar", Description: "d", Image: "i", Price: 1, DateOfSale: "2023-03-01T00:00:00Z"},
	})

	w := domain.Window{Start: "2023-02-01", End: "2023-02-31"}
	n, err := repo.CountInWindow(ctx, w)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("february window: want 1, got %d", n)
	}
}

func TestPriceBucketsGrouping(t *testing.T) {
	_, repo := testdb(t)
	ctx := context.Background()
	insert(t, repo, []domain.SaleRecord{
		{ID: "a", Title: "a", Description: "d", Image: "i", Price: 50, DateOfSale: "2023-03-01T00:00:00Z"},
		{ID: "b", Title: "b", Description: "d", Image: "i", Price: 99.99, DateOfSale: "2023-03-02T00:00:00Z"},
		{ID: "c", Title: "c", Description: "d", Image: "i", Price: 450, DateOfSale: "2023-03-03T00:00:00Z"},
		{ID: "d", Title: "d", Description: "d", Image: "i", Price: 1200, DateOfSale: "2023-03-04T00:00:00Z"},
	})

	w := domain.Window{Start: "2023-03-01", End: "2023-03-31"}
	boundaries := []float64{0, 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000}
	counts, err := repo.PriceBuckets(ctx, w, boundaries, "901-above")
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]int{"0-100": 2, "400-500": 1, "901-above": 1}
	for label, n := range want {
		if counts[label] != n {
			t.Fatalf("bucket %s: want %d, got %d", label, n, counts[label])
		}
	}
	// empty buckets are simply absent at this layer; the service zero-fills
	if _, ok := counts["200-300"]; ok {
		t.Fatal("did not expect an entry for an empty bucket")
	}
}

func TestSearchMatchesTitleOrDescription(t *testing.T) {
	_, repo := testdb(t)
	ctx := context.Background()
	insert(t, repo, []domain.SaleRecord{
		{ID: "a", Title: "Gaming Laptop", Description: "fast", Image: "i", Price: 900, DateOfSale: "2023-03-01T00:00:00Z"},
		{ID: "b", Title: "Stand", Description: "fits any laptop", Image: "i", Price: 30, DateOfSale: "2023-03-02T00:00:00Z"},
		{ID: "c", Title: "Chair", Description: "ergonomic", Image: "i", Price: 120, DateOfSale: "2023-03-03T00:00:00Z"},
	})

	got, err := repo.Search(ctx, "LAPTOP", 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 matches, got %d", len(got))
	}

	n, err := repo.CountMatching(ctx, "LAPTOP")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("count: want 2, got %d", n)
	}
}
