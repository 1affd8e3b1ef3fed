package trips

import (
	"container/heap"
	"sort"
)

// ZoneCount is one row of the busiest-zones report.
type ZoneCount struct {
	Zone  string `json:"zone"`
	Count int64  `json:"count"`
}

// SlotCount is one row of the busiest-slots report.
type SlotCount struct {
	Zone  string `json:"zone"`
	Hour  int    `json:"hour"`
	Count int64  `json:"count"`
}

// betterZone is the zone ranking order: count descending, then zone name
// ascending so equal counts always list in the same order.
func betterZone(a, b ZoneCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Zone < b.Zone
}

// betterSlot ranks slots by count descending, then zone ascending, then hour
// ascending.
func betterSlot(a, b SlotCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if a.Zone != b.Zone {
		return a.Zone < b.Zone
	}
	return a.Hour < b.Hour
}

// TopZones returns the k busiest pickup zones in ranking order. When the
// table holds more than k zones a partition step narrows the candidates
// first, so only the retained k pay the sort.
func (a *Analyzer) TopZones(k int) []ZoneCount {
	if k <= 0 || a.zones == 0 {
		return nil
	}
	v := make([]ZoneCount, 0, a.zones)
	for _, e := range a.entries {
		for ; e != nil; e = e.next {
			v = append(v, ZoneCount{Zone: e.name, Count: e.count})
		}
	}
	if len(v) > k {
		selectZones(v, k)
		v = v[:k]
	}
	sort.Slice(v, func(i, j int) bool { return betterZone(v[i], v[j]) })
	return v
}

// selectZones partitions v so its first k entries are the k best by
// betterZone, in no particular order (quickselect).
func selectZones(v []ZoneCount, k int) {
	lo, hi := 0, len(v)-1
	for lo < hi {
		p := partitionZones(v, lo, hi)
		switch {
		case p == k-1:
			return
		case p < k-1:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

func partitionZones(v []ZoneCount, lo, hi int) int {
	// median-of-three pivot so near-sorted tables don't go quadratic
	mid := lo + (hi-lo)/2
	if betterZone(v[mid], v[lo]) {
		v[mid], v[lo] = v[lo], v[mid]
	}
	if betterZone(v[hi], v[lo]) {
		v[hi], v[lo] = v[lo], v[hi]
	}
	if betterZone(v[hi], v[mid]) {
		v[hi], v[mid] = v[mid], v[hi]
	}
	v[mid], v[hi] = v[hi], v[mid]
	pivot := v[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if betterZone(v[j], pivot) {
			v[i], v[j] = v[j], v[i]
			i++
		}
	}
	v[i], v[hi] = v[hi], v[i]
	return i
}

// slotHeap keeps the k best slots seen so far with the worst of them on top,
// so a new candidate only has to beat the root to enter.
type slotHeap []SlotCount

func (h slotHeap) Len() int           { return len(h) }
func (h slotHeap) Less(i, j int) bool { return betterSlot(h[j], h[i]) }
func (h slotHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *slotHeap) Push(x any) { *h = append(*h, x.(SlotCount)) }

func (h *slotHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopBusySlots returns the k busiest (zone, hour) buckets in ranking order.
// A bounded heap keeps at most k candidates while walking the table, then
// only those are sorted.
func (a *Analyzer) TopBusySlots(k int) []SlotCount {
	if k <= 0 || a.slots == 0 {
		return nil
	}
	h := make(slotHeap, 0, min(k, a.slots))
	for _, e := range a.entries {
		for ; e != nil; e = e.next {
			for hr, cnt := range e.hours {
				if cnt == 0 {
					continue
				}
				cand := SlotCount{Zone: e.name, Hour: hr, Count: cnt}
				if len(h) < k {
					heap.Push(&h, cand)
				} else if betterSlot(cand, h[0]) {
					h[0] = cand
					heap.Fix(&h, 0)
				}
			}
		}
	}
	out := []SlotCount(h)
	sort.Slice(out, func(i, j int) bool { return betterSlot(out[i], out[j]) })
	return out
}
