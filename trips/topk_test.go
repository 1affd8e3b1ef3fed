package trips

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func bumpN(a *Analyzer, zone string, hour, n int) {
	for i := 0; i < n; i++ {
		a.bump([]byte(zone), hour)
	}
}

// allZones reads the zone table directly, for cross-checking the selector
// against a naive full sort.
func allZones(a *Analyzer) []ZoneCount {
	v := []ZoneCount{}
	for _, e := range a.entries {
		for ; e != nil; e = e.next {
			v = append(v, ZoneCount{Zone: e.name, Count: e.count})
		}
	}
	return v
}

func allSlots(a *Analyzer) []SlotCount {
	v := []SlotCount{}
	for _, e := range a.entries {
		for ; e != nil; e = e.next {
			for hr, cnt := range e.hours {
				if cnt > 0 {
					v = append(v, SlotCount{Zone: e.name, Hour: hr, Count: cnt})
				}
			}
		}
	}
	return v
}

func TestTopZonesOrdering(t *testing.T) {
	a := NewAnalyzer(LayoutHeadered)
	bumpN(a, "uptown", 9, 3)
	bumpN(a, "airport", 12, 5)
	bumpN(a, "harbor", 7, 3)
	bumpN(a, "midtown", 22, 1)

	expected := []ZoneCount{
		{Zone: "airport", Count: 5},
		{Zone: "harbor", Count: 3}, // ties break on zone name ascending
		{Zone: "uptown", Count: 3},
		{Zone: "midtown", Count: 1},
	}
	got := a.TopZones(10)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestTopZonesBounds(t *testing.T) {
	a := NewAnalyzer(LayoutHeadered)
	bumpN(a, "A", 1, 2)
	bumpN(a, "B", 2, 1)
	bumpN(a, "C", 3, 4)

	tests := []struct {
		name   string
		k      int
		expLen int
	}{
		{name: "zero k", k: 0, expLen: 0},
		{name: "negative k", k: -3, expLen: 0},
		{name: "k below table size", k: 2, expLen: 2},
		{name: "k equals table size", k: 3, expLen: 3},
		{name: "k beyond table size", k: 50, expLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.TopZones(tt.k)
			if len(got) != tt.expLen {
				t.Errorf("expected %d entries, got %d", tt.expLen, len(got))
			}
		})
	}
}

func TestTopZonesEmptyTable(t *testing.T) {
	a := NewAnalyzer(LayoutHeadered)
	if got := a.TopZones(5); got != nil {
		t.Errorf("expected nil for empty table, got %v", got)
	}
	if got := a.TopBusySlots(5); got != nil {
		t.Errorf("expected nil for empty table, got %v", got)
	}
}

func TestTopBusySlotsOrdering(t *testing.T) {
	a := NewAnalyzer(LayoutHeadered)
	bumpN(a, "A", 9, 2)
	bumpN(a, "A", 11, 2)
	bumpN(a, "B", 10, 3)
	bumpN(a, "B", 9, 2)

	expected := []SlotCount{
		{Zone: "B", Hour: 10, Count: 3},
		{Zone: "A", Hour: 9, Count: 2},
		{Zone: "A", Hour: 11, Count: 2},
		{Zone: "B", Hour: 9, Count: 2},
	}
	got := a.TopBusySlots(10)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestTopBusySlotsBounded(t *testing.T) {
	a := NewAnalyzer(LayoutHeadered)
	bumpN(a, "A", 9, 5)
	bumpN(a, "A", 10, 4)
	bumpN(a, "B", 9, 3)
	bumpN(a, "B", 10, 2)

	expected := []SlotCount{
		{Zone: "A", Hour: 9, Count: 5},
		{Zone: "A", Hour: 10, Count: 4},
	}
	got := a.TopBusySlots(2)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

// TestSelectorsMatchFullSort cross-checks both selectors against a naive
// full-sort reference over randomized tables.
func TestSelectorsMatchFullSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 5; round++ {
		a := NewAnalyzer(LayoutHeadered)
		for i := 0; i < 1000; i++ {
			zone := fmt.Sprintf("zone-%04d", i)
			n := rng.Intn(20) + 1
			for j := 0; j < n; j++ {
				a.bump([]byte(zone), rng.Intn(24))
			}
		}

		refZones := allZones(a)
		sort.Slice(refZones, func(i, j int) bool { return betterZone(refZones[i], refZones[j]) })
		refSlots := allSlots(a)
		sort.Slice(refSlots, func(i, j int) bool { return betterSlot(refSlots[i], refSlots[j]) })

		for _, k := range []int{1, 5, 17, 250, 999, 1000, 1500} {
			nz := min(k, len(refZones))
			if got := a.TopZones(k); !reflect.DeepEqual(got, refZones[:nz]) {
				t.Fatalf("round %d k=%d: TopZones diverges from full sort", round, k)
			}
			ns := min(k, len(refSlots))
			if got := a.TopBusySlots(k); !reflect.DeepEqual(got, refSlots[:ns]) {
				t.Fatalf("round %d k=%d: TopBusySlots diverges from full sort", round, k)
			}
		}
	}
}
