package vm

// A PageDirectory is the inner level of a two-level page table. It holds a
// fixed number of PTEs and is allocated lazily when the first page in its
// range is mapped.
type PageDirectory struct {
	ptes []PTE
}

func newPageDirectory(numPTEs int) *PageDirectory {
	return &PageDirectory{ptes: make([]PTE, numPTEs)}
}

// PTE returns a pointer to the entry at the given inner index.
func (d *PageDirectory) PTE(inner int) *PTE {
	return &d.ptes[inner]
}

// A PageTable is the two-level page table of one process. The outer level
// has the same arity as a directory, so a table spans ptesPerPage squared
// virtual pages. Each process owns its table exclusively.
type PageTable struct {
	ptesPerPage int
	directories []*PageDirectory
}

// NewPageTable creates an empty page table with the given number of PTEs
// per directory.
func NewPageTable(ptesPerPage int) *PageTable {
	if ptesPerPage <= 0 {
		panic("page table must have at least one PTE per page")
	}

	return &PageTable{
		ptesPerPage: ptesPerPage,
		directories: make([]*PageDirectory, ptesPerPage),
	}
}

// NumPages returns the number of virtual pages the table can map.
func (t *PageTable) NumPages() int {
	return t.ptesPerPage * t.ptesPerPage
}

func (t *PageTable) split(vpn int) (outer, inner int) {
	if vpn < 0 || vpn >= t.NumPages() {
		panic("vpn out of range")
	}

	return vpn / t.ptesPerPage, vpn % t.ptesPerPage
}

// Entry returns a pointer to the PTE for vpn, creating the inner directory
// if it does not exist yet.
func (t *PageTable) Entry(vpn int) *PTE {
	outer, inner := t.split(vpn)

	if t.directories[outer] == nil {
		t.directories[outer] = newPageDirectory(t.ptesPerPage)
	}

	return t.directories[outer].PTE(inner)
}

// Find returns a pointer to the PTE for vpn without allocating anything.
// The bool return value indicates whether the directory for vpn exists.
func (t *PageTable) Find(vpn int) (*PTE, bool) {
	outer, inner := t.split(vpn)

	dir := t.directories[outer]
	if dir == nil {
		return nil, false
	}

	return dir.PTE(inner), true
}

// ForEachValid calls fn for every valid PTE in the table, in ascending vpn
// order. The callback may mutate the entry.
func (t *PageTable) ForEachValid(fn func(vpn int, pte *PTE)) {
	for outer, dir := range t.directories {
		if dir == nil {
			continue
		}

		for inner := range dir.ptes {
			pte := &dir.ptes[inner]
			if pte.Valid {
				fn(outer*t.ptesPerPage+inner, pte)
			}
		}
	}
}
