package menu

import "github.com/shopspring/decimal"

// ComputeStats derives the admin dashboard figures. The top category is the
// first category in Categories with the highest count; an empty catalog
// yields zero averages and the first category.
func ComputeStats(products []Product) Stats {
	stats := Stats{
		TotalItems:  len(products),
		AvgPrice:    decimal.Zero,
		TopCategory: Categories[0],
	}
	if len(products) == 0 {
		return stats
	}

	priceSum := decimal.Zero
	ratingSum := 0.0
	counts := make(map[Category]int)

	for _, p := range products {
		priceSum = priceSum.Add(p.Price)
		ratingSum += p.Rating
		counts[p.Category]++
	}

	n := len(products)
	stats.AvgPrice = priceSum.Div(decimal.NewFromInt(int64(n)))
	stats.AvgRating = ratingSum / float64(n)

	for _, c := range Categories {
		if counts[c] > counts[stats.TopCategory] {
			stats.TopCategory = c
		}
	}

	return stats
}
