package hashmap

import "math"

// Returns the smallest initial capacity that holds n keys under the given
// load factor without growing. Returns 0 when New would reject the load
// factor or the resulting capacity.
func CapacityFor(n int, loadFactor float64) int {
	if !(loadFactor >= MinLoadFactor) || math.IsInf(loadFactor, 1) {
		return 0
	}

	if n <= 0 {
		return 1
	}

	// Growth fires at n/capacity >= loadFactor, so capacity has to be
	// strictly above n/loadFactor. Float rounding is fixed up below.
	exact := float64(n) / loadFactor
	if exact >= maxCapacity {
		return 0
	}

	capacity := int(exact) + 1
	for float64(n)/float64(capacity) >= loadFactor {
		capacity++
	}

	for capacity > 1 && float64(n)/float64(capacity-1) < loadFactor {
		capacity--
	}

	if capacity > maxCapacity {
		return 0
	}

	return capacity
}
