package hashmap

// HashMap is a string to string map built on separate chaining.
// Every bucket holds a singly linked chain of entries, and the bucket array
// doubles once the number of entries reaches the load factor of the capacity.
// Removals never shrink it.
//
// The iteration order of Keys, Values and Entries follows the bucket layout,
// not the insertion order.
//
// A HashMap is not safe for concurrent use.
type HashMap struct {
	table
}

// Returns a new map, 16 buckets and a 0.75 load factor unless overridden.
// Fails with ErrInvalidConfiguration for a non-positive capacity or load factor.
func New(opts ...Option) (*HashMap, error) {
	var hm HashMap
	if err := hm.init(opts...); err != nil {
		return nil, err
	}

	return &hm, nil
}

// Returns the bucket index of key for the current capacity.
func (hm *HashMap) Hash(key string) int {
	return Hash(key, len(hm.buckets))
}

// Puts a key in the map, replacing the value of an existing key.
// Adding a new key may grow the map.
func (hm *HashMap) Set(key, value string) error {
	_, err := hm.set(key, value)
	return err
}

// Returns the value of key and whether it was found.
func (hm *HashMap) Get(key string) (string, bool, error) {
	return hm.get(key)
}

// Checks whether a key is in the map.
func (hm *HashMap) Has(key string) (bool, error) {
	e, err := hm.find(key)
	return e != nil, err
}

// Removes a key from the map. Returns whether the key was present.
func (hm *HashMap) Remove(key string) (bool, error) {
	return hm.delete(key)
}

// Returns the number of keys in the map.
func (hm *HashMap) Len() int {
	return hm.size
}

// Removes all the keys, the capacity is retained.
func (hm *HashMap) Clear() {
	hm.reset()
}

// Returns the current number of buckets.
func (hm *HashMap) Capacity() int {
	return len(hm.buckets)
}

// Returns the ratio of keys to buckets at which the map grows.
func (hm *HashMap) LoadFactor() float64 {
	return hm.loadFactor
}

// Returns a fresh slice of all the keys.
func (hm *HashMap) Keys() []string {
	keys := make([]string, 0, hm.size)
	hm.walk(func(e *entry) {
		keys = append(keys, e.key)
	})

	return keys
}

// Returns a fresh slice of all the values, in the same order as Keys.
func (hm *HashMap) Values() []string {
	values := make([]string, 0, hm.size)
	hm.walk(func(e *entry) {
		values = append(values, e.value)
	})

	return values
}

// Returns a fresh slice of all the key-value pairs, in the same order as Keys.
func (hm *HashMap) Entries() []Entry {
	entries := make([]Entry, 0, hm.size)
	hm.walk(func(e *entry) {
		entries = append(entries, Entry{Key: e.key, Value: e.value})
	})

	return entries
}
