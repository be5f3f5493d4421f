// Package mmu implements the memory management unit of the simulation:
// address translation through the TLB and a two-level page table, page
// allocation and freeing, page fault handling with copy-on-write, and
// process switching with COW-based fork.
package mmu

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/tlb"
)

// An MMU holds all the state that address translation manipulates: the
// current process, the page table base pointer, the ready queue, the TLB,
// and the frame reference-count table. It is an explicit context object so
// that tests can run isolated instances.
//
// The core is driven synchronously, one operation at a time. The embedded
// mutex exists for external observers such as the monitoring server; every
// exported operation holds it for its whole duration, so a process switch
// and its TLB flush are observed as one atomic unit.
type MMU struct {
	sync.Mutex

	name        string
	ptesPerPage int

	frames   FrameAllocator
	tlb      *tlb.TLB
	recorder DataRecorder

	current    *Process
	ptbr       *vm.PageTable
	readyQueue *list.List
}

// Name returns the name of the MMU.
func (m *MMU) Name() string {
	return m.name
}

// Current returns the currently running process.
func (m *MMU) Current() *Process {
	m.Lock()
	defer m.Unlock()

	return m.current
}

// PageTable returns the active page table (the simulated page table base
// register).
func (m *MMU) PageTable() *vm.PageTable {
	m.Lock()
	defer m.Unlock()

	return m.ptbr
}

// TLB returns the translation lookaside buffer.
func (m *MMU) TLB() *tlb.TLB {
	return m.tlb
}

// Frames returns the frame allocator.
func (m *MMU) Frames() FrameAllocator {
	return m.frames
}

// Processes returns the current process followed by the ready queue in FIFO
// order.
func (m *MMU) Processes() []*Process {
	m.Lock()
	defer m.Unlock()

	return m.processes()
}

func (m *MMU) processes() []*Process {
	procs := []*Process{m.current}
	for e := m.readyQueue.Front(); e != nil; e = e.Next() {
		procs = append(procs, e.Value.(*Process))
	}

	return procs
}

// Translate resolves vpn for an access with the given rights. The TLB is
// consulted first; on a miss the page table is walked and the TLB is
// repopulated. vm.ErrTranslationFault is returned when the walk cannot
// satisfy the access, in which case the caller should run HandlePageFault
// and retry.
func (m *MMU) Translate(vpn int, rights vm.AccessRights) (int, error) {
	m.Lock()
	defer m.Unlock()

	return m.translate(vpn, rights)
}

func (m *MMU) translate(vpn int, rights vm.AccessRights) (int, error) {
	if pfn, hit := m.tlb.Lookup(vpn); hit {
		m.recordTranslation(vpn, pfn, rights, true)
		return pfn, nil
	}

	pte, ok := m.ptbr.Find(vpn)
	if !ok || !pte.Valid {
		return 0, vm.ErrTranslationFault
	}

	if rights.CanWrite() && !pte.Writable {
		return 0, vm.ErrTranslationFault
	}

	m.tlb.Insert(vpn, pte.Frame)
	m.recordTranslation(vpn, pte.Frame, rights, false)

	return pte.Frame, nil
}

// AllocatePage maps vpn to the free frame with the smallest frame number
// and returns that frame number. Pages allocated without write rights are
// permanently read-only. vm.ErrOutOfFrames is returned, with no state
// modified, when every frame is in use.
func (m *MMU) AllocatePage(vpn int, rights vm.AccessRights) (int, error) {
	m.Lock()
	defer m.Unlock()

	if pte, ok := m.ptbr.Find(vpn); ok && pte.Valid {
		return 0, fmt.Errorf("%w: vpn %d is already mapped",
			vm.ErrInconsistentMapping, vpn)
	}

	pfn, ok := m.frames.FindFreeFrame()
	if !ok {
		return 0, vm.ErrOutOfFrames
	}

	pte := m.ptbr.Entry(vpn)
	pte.Valid = true
	pte.Frame = pfn
	if rights.CanWrite() {
		pte.Writable = true
		pte.Privilege = vm.PrivilegeReadWrite
	} else {
		pte.Writable = false
		pte.Privilege = vm.PrivilegeReadOnly
	}

	m.frames.Increment(pfn)

	return pfn, nil
}

// FreePage unmaps vpn from the current process. The frame's reference count
// drops by one; the frame itself stays allocated while other processes still
// map it. The TLB entry for vpn, if any, is invalidated. Freeing a vpn that
// is not mapped is reported as vm.ErrInconsistentMapping and leaves the
// reference counts untouched.
func (m *MMU) FreePage(vpn int) error {
	m.Lock()
	defer m.Unlock()

	pte, ok := m.ptbr.Find(vpn)
	if !ok || !pte.Valid {
		return fmt.Errorf("%w: vpn %d is not mapped",
			vm.ErrInconsistentMapping, vpn)
	}

	pfn := pte.Frame
	pte.Valid = false
	pte.Writable = false
	pte.Frame = 0

	m.frames.Decrement(pfn)
	m.tlb.Invalidate(vpn)

	return nil
}

// HandlePageFault resolves a failed translation of vpn for the given
// rights. The only resolvable fault is a write to a page that is
// write-protected for copy-on-write: with a single owner the page is
// promoted back to writable in place, with multiple owners the faulting
// process moves to a private copy on a fresh frame. The TLB is never
// touched here; the driver retries translation after a successful
// resolution, which repopulates it.
func (m *MMU) HandlePageFault(vpn int, rights vm.AccessRights) error {
	m.Lock()
	defer m.Unlock()

	return m.handlePageFault(vpn, rights)
}

func (m *MMU) handlePageFault(vpn int, rights vm.AccessRights) error {
	pte, ok := m.ptbr.Find(vpn)
	if !ok {
		m.recordFault(vpn, rights, "no-directory")
		return fmt.Errorf("%w: no directory for vpn %d",
			vm.ErrInconsistentMapping, vpn)
	}

	if !pte.Valid {
		m.recordFault(vpn, rights, "invalid-pte")
		return fmt.Errorf("%w: vpn %d has no valid mapping",
			vm.ErrInconsistentMapping, vpn)
	}

	if !pte.Writable && rights.CanWrite() {
		return m.resolveWriteFault(vpn, rights, pte)
	}

	m.recordFault(vpn, rights, "unexpected")
	return fmt.Errorf("%w: unexpected fault on vpn %d",
		vm.ErrInconsistentMapping, vpn)
}

func (m *MMU) resolveWriteFault(
	vpn int,
	rights vm.AccessRights,
	pte *vm.PTE,
) error {
	if pte.Privilege == vm.PrivilegeReadOnly {
		m.recordFault(vpn, rights, "protection-violation")
		return vm.ErrProtectionViolation
	}

	switch refs := m.frames.RefCount(pte.Frame); {
	case refs == 1:
		// Sole owner again, the fork that protected this page has run its
		// course. Promote in place.
		pte.Writable = true
		m.recordFault(vpn, rights, "promoted")
		return nil

	case refs >= 2:
		return m.copyOnWrite(vpn, rights, pte)

	default:
		m.recordFault(vpn, rights, "unreferenced-frame")
		return fmt.Errorf("%w: valid vpn %d maps unreferenced frame %d",
			vm.ErrInconsistentMapping, vpn, pte.Frame)
	}
}

// copyOnWrite moves the faulting PTE to a private frame. The replacement
// frame is claimed before the shared frame's count is dropped, so a full
// frame table fails without changing any state.
func (m *MMU) copyOnWrite(vpn int, rights vm.AccessRights, pte *vm.PTE) error {
	pfn, ok := m.frames.FindFreeFrame()
	if !ok {
		m.recordFault(vpn, rights, "out-of-frames")
		return vm.ErrOutOfFrames
	}

	m.frames.Decrement(pte.Frame)
	pte.Frame = pfn
	pte.Writable = true
	m.frames.Increment(pfn)

	m.recordFault(vpn, rights, "copied")
	return nil
}

// SwitchProcess makes the process with the given pid the current one. The
// TLB is flushed unconditionally. If no such process waits in the ready
// queue, a new process is forked from the current one with copy-on-write
// sharing of every mapped page. The previous current process always moves
// to the tail of the ready queue.
func (m *MMU) SwitchProcess(pid vm.PID) {
	m.Lock()
	defer m.Unlock()

	m.tlb.InvalidateAll()

	from := m.current.pid

	for e := m.readyQueue.Front(); e != nil; e = e.Next() {
		p := e.Value.(*Process)
		if p.pid != pid {
			continue
		}

		m.readyQueue.Remove(e)
		m.readyQueue.PushBack(m.current)
		m.current = p
		m.ptbr = p.pageTable
		m.recordSwitch(from, pid, false)

		return
	}

	m.fork(pid)
	m.recordSwitch(from, pid, true)
}

// fork creates a child process whose page table holds the same values as
// the parent's at this moment. Every shared frame gains a reference, and
// both copies of each page are write-protected so that the next write from
// either side faults into the COW path. The privilege bit is carried over
// unchanged: pages that were read-only stay marked read-only, pages that
// were writable stay marked as COW-able.
func (m *MMU) fork(pid vm.PID) {
	child := &Process{
		pid:       pid,
		pageTable: vm.NewPageTable(m.ptesPerPage),
	}

	m.ptbr.ForEachValid(func(vpn int, pte *vm.PTE) {
		m.frames.Increment(pte.Frame)

		childPTE := child.pageTable.Entry(vpn)
		*childPTE = *pte
		childPTE.Writable = false

		pte.Writable = false
	})

	m.readyQueue.PushBack(m.current)
	m.current = child
	m.ptbr = child.pageTable
}

// Access runs the full access path the driving framework would: translate,
// and on a translation fault run the fault handler once and translate
// again.
func (m *MMU) Access(vpn int, rights vm.AccessRights) (int, error) {
	m.Lock()
	defer m.Unlock()

	pfn, err := m.translate(vpn, rights)
	if err == nil {
		return pfn, nil
	}

	if faultErr := m.handlePageFault(vpn, rights); faultErr != nil {
		return 0, faultErr
	}

	return m.translate(vpn, rights)
}

// AuditFrames verifies the frame accounting invariants: every frame's
// reference count equals the number of valid PTEs across all processes that
// map it, and no read-only-privileged page is writable. It returns an error
// describing the first violation found.
func (m *MMU) AuditFrames() error {
	m.Lock()
	defer m.Unlock()

	counts := make([]int, m.frames.NumFrames())

	for _, p := range m.processes() {
		var badVPN = -1
		p.pageTable.ForEachValid(func(vpn int, pte *vm.PTE) {
			counts[pte.Frame]++
			if pte.Privilege == vm.PrivilegeReadOnly && pte.Writable && badVPN < 0 {
				badVPN = vpn
			}
		})

		if badVPN >= 0 {
			return fmt.Errorf(
				"process %d: read-only vpn %d is marked writable",
				p.pid, badVPN)
		}
	}

	for pfn, want := range counts {
		if got := m.frames.RefCount(pfn); got != want {
			return fmt.Errorf(
				"frame %d: reference count is %d, but %d valid PTEs map it",
				pfn, got, want)
		}
	}

	return nil
}
