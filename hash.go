package hashmap

import (
	"unicode"
	"unicode/utf16"
)

const hashMultiplier = 31

// Hash computes the bucket index of key for a table of the given capacity.
//
// It's a polynomial rolling hash over the UTF-16 code units of the key,
// reduced modulo capacity on every step, so the result is always in
// [0, capacity). The same key may land in a different bucket once the
// capacity changes.
func Hash(key string, capacity int) int {
	if capacity <= 0 {
		return 0
	}

	h := 0
	for _, r := range key {
		if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
			h = (hashMultiplier*h + int(r1)) % capacity
			h = (hashMultiplier*h + int(r2)) % capacity

			continue
		}

		h = (hashMultiplier*h + int(r)) % capacity
	}

	return h
}
