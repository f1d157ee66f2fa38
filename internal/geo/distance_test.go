package geo

import (
	"math"
	"testing"
)

func TestDistanceKM(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 22.116, 84.017, 22.116, 84.017, 0, 0.001},
		{"delhi to mumbai", 28.6328, 77.2197, 18.9388, 72.8354, 1153, 15},
		{"kolkata to bengaluru", 22.5726, 88.3639, 12.9762, 77.6033, 1560, 20},
		{"one degree of latitude", 0, 0, 1, 0, 111.2, 1},
		{"across the equator", -10, 20, 10, 20, 2223.9, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKM(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("DistanceKM() = %.2f, want %.2f ± %.2f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestDistanceKMSymmetric(t *testing.T) {
	a := DistanceKM(22.1160, 84.0170, 18.9388, 72.8354)
	b := DistanceKM(18.9388, 72.8354, 22.1160, 84.0170)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}

func TestLookupPIN(t *testing.T) {
	if _, ok := LookupPIN(DefaultPIN); !ok {
		t.Fatalf("default PIN %s must resolve", DefaultPIN)
	}
	if _, ok := LookupPIN("000000"); ok {
		t.Error("unknown PIN should not resolve")
	}
}
