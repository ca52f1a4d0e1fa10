package product

import "math"

// AverageRating returns the arithmetic mean of all review ratings rounded to
// one decimal place, or 0 when there are no reviews. It is always computed
// from the full review list, never patched incrementally.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}

	avg := float64(total) / float64(len(reviews))
	return math.Round(avg*10) / 10
}
