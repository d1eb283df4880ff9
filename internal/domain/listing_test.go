package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListing_Rating(t *testing.T) {
	tests := []struct {
		name  string
		sum   int64
		count int64
		want  float64
	}{
		{"no reviews", 0, 0, 0},
		{"single five", 5, 1, 5},
		{"rounds half up", 9, 2, 4.5},
		{"two decimals", 13, 3, 4.33},
		{"repeating third rounds", 14, 3, 4.67},
		{"all ones", 4, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Listing{RatingSum: tt.sum, RatingCount: tt.count}
			assert.Equal(t, tt.want, l.Rating())
		})
	}
}
