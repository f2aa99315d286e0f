package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 40, CalculateOffset(5, 10))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 1, CalculateTotalPages(0, 10))
}

func TestCalculateAdvance(t *testing.T) {
	// 30% rounded up to the next rupee
	assert.Equal(t, float64(432), CalculateAdvance(1440))
	assert.Equal(t, float64(181), CalculateAdvance(600.5))
	assert.Equal(t, float64(0), CalculateAdvance(0))
}
