package hashmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapacityFor(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		loadFactor float64
		want       int
	}{
		{"zero keys", 0, 0.75, 1},
		{"negative keys", -3, 0.75, 1},
		{"one key", 1, 0.75, 2},
		{"exact multiple", 12, 0.75, 17},
		{"half load", 8, 0.5, 17},
		{"load factor above one", 10, 2, 6},
		{"zero load factor", 10, 0, 0},
		{"negative load factor", 10, -1, 0},
		{"NaN load factor", 10, math.NaN(), 0},
		{"infinite load factor", 10, math.Inf(1), 0},
		{"tiny load factor", 1000, 1e-300, 0},
		{"min load factor", 1, MinLoadFactor, 1025},
		{"above max capacity", maxCapacity, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CapacityFor(tt.n, tt.loadFactor))
		})
	}
}

func TestCapacityFor_NoGrowth(t *testing.T) {
	for _, n := range []int{1, 7, 12, 100, 1000} {
		for _, lf := range []float64{0.3, 0.75, 1, 1.5} {
			capacity := CapacityFor(n, lf)
			hm := mustNew(t, WithInitialCapacity(capacity), WithLoadFactor(lf))

			for _, k := range genKeys(0, n) {
				require.NoError(t, hm.Set(k, k))
			}

			require.Equal(t, capacity, hm.Capacity(), "n=%d lf=%v", n, lf)
			require.Zero(t, hm.Stats().Resizes)
		}
	}
}
