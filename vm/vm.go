// Package vm defines the data model shared by the address-translation
// components: page table entries, two-level page tables, and the physical
// frame reference-count table.
package vm

// PID stands for Process ID.
type PID uint32

// AccessRights describes how a page is accessed or how it is allowed to be
// accessed.
type AccessRights uint8

// Pages can be accessed for reads and for writes.
const (
	AccessRead AccessRights = 1 << iota
	AccessWrite
)

// CanWrite returns true if the rights include write access.
func (r AccessRights) CanWrite() bool {
	return r&AccessWrite != 0
}

// Privilege records the access rights a page was created with. It is
// deliberately separate from the mutable writable bit of a PTE: copy-on-write
// clears the writable bit on pages that are legitimately writable, and the
// privilege is what allows the fault handler to tell such a page apart from
// one that must stay read-only forever.
type Privilege uint8

const (
	// PrivilegeReadWrite marks a page that was allocated writable. The page
	// may be write-protected temporarily after a fork, but a write fault on
	// it is resolvable.
	PrivilegeReadWrite Privilege = iota

	// PrivilegeReadOnly marks a page that was allocated read-only. A write
	// to it is a protection violation regardless of sharing.
	PrivilegeReadOnly
)

// A PTE is one page table entry, mapping a virtual page to a physical frame
// together with its access rights.
type PTE struct {
	Valid     bool
	Writable  bool
	Privilege Privilege
	Frame     int
}
