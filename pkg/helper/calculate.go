package helper

import (
	"math"
)

const advanceFraction = 0.3

func CalculateOffset(page, limit int) int {
	if page <= 0 || limit <= 0 {
		return 0
	}

	return (page - 1) * limit
}

func CalculateTotalPages(totalItems, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 1
	}

	return (totalItems + limit - 1) / limit
}

// CalculateAdvance returns the up-front amount for a partially paid booking,
// 30% of the total rounded up to the next whole unit.
func CalculateAdvance(total float64) float64 {
	if total <= 0 {
		return 0
	}

	return math.Ceil(total * advanceFraction)
}
