package utils

import "math"

// ScaledAverage computes the unweighted mean of the scores, scaled by 100 and
// rounded to the nearest integer. A 1-5 score range therefore maps onto a
// 0-500 aggregate, which is what the users table stores. An empty slice
// yields 0/0.
func ScaledAverage(scores []int) (avg int, count int) {
	if len(scores) == 0 {
		return 0, 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	avg = int(math.Round(float64(sum) / float64(len(scores)) * 100))
	return avg, len(scores)
}

// UnscaleRating converts a stored 0-500 aggregate back to a 0.00-5.00 value.
func UnscaleRating(scaled int) float64 {
	return float64(scaled) / 100
}
