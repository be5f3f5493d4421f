// Package tlb provides the translation lookaside buffer of the simulated
// MMU. The TLB caches translations for the currently running process only,
// so it is flushed wholesale on every process switch.
package tlb

// An entry caches the translation of one virtual page.
type entry struct {
	valid bool
	vpn   int
	pfn   int
}

// A TLB is a fixed-capacity translation cache with linear-scan lookup.
// When an insert would exceed the capacity, the oldest entry is evicted
// (FIFO).
type TLB struct {
	capacity int
	entries  []entry
}

// New creates a TLB that can hold up to capacity translations.
func New(capacity int) *TLB {
	if capacity <= 0 {
		panic("TLB capacity must be positive")
	}

	return &TLB{
		capacity: capacity,
		entries:  make([]entry, 0, capacity),
	}
}

// Capacity returns the maximum number of entries the TLB can hold.
func (t *TLB) Capacity() int {
	return t.capacity
}

// Len returns the number of valid entries currently cached.
func (t *TLB) Len() int {
	n := 0
	for _, e := range t.entries {
		if e.valid {
			n++
		}
	}

	return n
}

// Lookup scans the valid entries for vpn. It returns the cached frame
// number and true on a hit. Lookup never mutates the TLB.
func (t *TLB) Lookup(vpn int) (pfn int, hit bool) {
	for _, e := range t.entries {
		if e.valid && e.vpn == vpn {
			return e.pfn, true
		}
	}

	return 0, false
}

// Insert caches the translation from vpn to pfn. If vpn is already cached,
// the entry is updated in place. If the TLB is full, the oldest entry is
// evicted first.
func (t *TLB) Insert(vpn, pfn int) {
	for i := range t.entries {
		if t.entries[i].valid && t.entries[i].vpn == vpn {
			t.entries[i].pfn = pfn
			return
		}
	}

	t.compact()
	if len(t.entries) == t.capacity {
		t.entries = t.entries[1:]
	}

	t.entries = append(t.entries, entry{valid: true, vpn: vpn, pfn: pfn})
}

// Invalidate drops the entry for vpn if it is cached.
func (t *TLB) Invalidate(vpn int) {
	for i := range t.entries {
		if t.entries[i].valid && t.entries[i].vpn == vpn {
			t.entries[i].valid = false
			return
		}
	}
}

// InvalidateAll drops every entry. It is called on every process switch, as
// translations are process-relative and must never leak across address
// spaces.
func (t *TLB) InvalidateAll() {
	t.entries = t.entries[:0]
}

// Entries returns the currently valid (vpn, pfn) pairs in insertion order.
func (t *TLB) Entries() [][2]int {
	pairs := make([][2]int, 0, len(t.entries))
	for _, e := range t.entries {
		if e.valid {
			pairs = append(pairs, [2]int{e.vpn, e.pfn})
		}
	}

	return pairs
}

// compact drops invalidated slots so that FIFO eviction only ever removes a
// live translation when the TLB is genuinely full.
func (t *TLB) compact() {
	live := t.entries[:0]
	for _, e := range t.entries {
		if e.valid {
			live = append(live, e)
		}
	}

	t.entries = live
}
