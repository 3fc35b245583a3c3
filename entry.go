package hashmap

// entry is a single node of a bucket chain.
// A nil next marks the end of the chain.
type entry struct {
	key   string
	value string
	next  *entry
}

// Entry is a key-value pair as returned by HashMap.Entries.
type Entry struct {
	Key   string
	Value string
}
