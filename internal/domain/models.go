package domain

import "fmt"

type SaleRecord struct {
	ID          string  `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	Image       string  `db:"image" json:"image"`
	Price       float64 `db:"price" json:"price"`
	Sold        bool    `db:"sold" json:"sold"`
	DateOfSale  string  `db:"date_of_sale" json:"dateOfSale"` // RFC3339 UTC
}

// Window is the inclusive date range derived from a (month, year) pair.
// Bounds are ISO date strings compared textually in SQL. End always carries
// day 31, even for short months; see services.ResolveWindow.
type Window struct {
	Start string
	End   string
}

type Statistics struct {
	TotalSales   float64 `json:"totalSales"`
	SoldCount    int     `json:"soldCount"`
	NotSoldCount int     `json:"notSoldCount"`
}

type PriceBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Count    int    `db:"count" json:"count"`
}

type CombinedReport struct {
	Statistics Statistics      `json:"statistics"`
	BarChart   []PriceBucket   `json:"barChart"`
	PieChart   []CategoryCount `json:"pieChart"`
}

type SearchResult struct {
	Transactions []SaleRecord `json:"transactions"`
	Total        int          `json:"total"`
	Page         int          `json:"page"`
	PerPage      int          `json:"perPage"`
	TotalPages   int          `json:"totalPages"`
}

// BucketLabels returns chart labels for ascending price boundaries plus the
// trailing overflow label: [0,100,200] -> ["0-100", "100-200", overflow].
func BucketLabels(boundaries []float64, overflow string) []string {
	labels := make([]string, 0, len(boundaries))
	for i := 0; i < len(boundaries)-1; i++ {
		labels = append(labels, fmt.Sprintf("%g-%g", boundaries[i], boundaries[i+1]))
	}
	return append(labels, overflow)
}
