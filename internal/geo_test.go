package internal

import (
	"math"
	"testing"
)

func TestHaversineKM(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tol                    float64
	}{
		{name: "same point", lat1: 28.6, lon1: 77.2, lat2: 28.6, lon2: 77.2, want: 0, tol: 1e-9},
		{name: "one degree longitude at equator", lat1: 0, lon1: 0, lat2: 0, lon2: 1, want: 111.19, tol: 0.5},
		{name: "rajiv chowk to new delhi", lat1: 28.6328, lon1: 77.2197, lat2: 28.6430, lon2: 77.2219, want: 1.15, tol: 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKM(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("HaversineKM = %v, want %v ± %v", got, tt.want, tt.tol)
			}
		})
	}
}
