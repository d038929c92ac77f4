package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		percent int
		want    float64
	}{
		{name: "zero percent keeps total", total: 100, percent: 0, want: 100},
		{name: "twenty percent", total: 100, percent: 20, want: 80},
		{name: "ten percent on decimal total", total: 150, percent: 10, want: 135},
		{name: "upper bound applies", total: 100, percent: 70, want: 30},
		{name: "above upper bound ignored", total: 100, percent: 71, want: 100},
		{name: "negative percent ignored", total: 100, percent: -5, want: 100},
		{name: "hundred percent ignored", total: 100, percent: 100, want: 100},
		{name: "empty total", total: 0, percent: 20, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ApplyDiscount(tt.total, tt.percent), 1e-9)
		})
	}
}
