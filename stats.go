package hashmap

type Stats struct {
	Size         int
	Capacity     int
	LoadFactor   float64
	Ratio        float64
	UsedBuckets  int
	LongestChain int
	Resizes      int
}

// Returns a snapshot of the bucket layout.
func (hm *HashMap) Stats() Stats {
	stats := Stats{
		Size:       hm.size,
		Capacity:   len(hm.buckets),
		LoadFactor: hm.loadFactor,
		Ratio:      float64(hm.size) / float64(len(hm.buckets)),
		Resizes:    hm.resizes,
	}

	for _, head := range hm.buckets {
		if head == nil {
			continue
		}

		stats.UsedBuckets++

		chain := 0
		for e := head; e != nil; e = e.next {
			chain++
		}

		stats.LongestChain = max(stats.LongestChain, chain)
	}

	return stats
}
