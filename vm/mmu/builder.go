package mmu

import (
	"container/list"

	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/tlb"
)

// A Builder can build MMUs.
type Builder struct {
	numFrames   int
	ptesPerPage int
	tlbCapacity int
	initialPID  vm.PID
	frames      FrameAllocator
	recorder    DataRecorder
}

// MakeBuilder creates a builder with default parameters: 128 physical
// frames, 16 PTEs per page, and a TLB that can hold a translation for every
// virtual page.
func MakeBuilder() Builder {
	return Builder{
		numFrames:   128,
		ptesPerPage: 16,
	}
}

// WithNumFrames sets the number of physical frames. Ignored when a frame
// allocator is provided explicitly.
func (b Builder) WithNumFrames(n int) Builder {
	b.numFrames = n
	return b
}

// WithPTEsPerPage sets the arity of both page table levels. The MMU can map
// n*n virtual pages.
func (b Builder) WithPTEsPerPage(n int) Builder {
	b.ptesPerPage = n
	return b
}

// WithTLBCapacity sets the number of translations the TLB can hold. The
// default, 0, sizes the TLB to cover the whole virtual page range.
func (b Builder) WithTLBCapacity(n int) Builder {
	b.tlbCapacity = n
	return b
}

// WithInitialPID sets the pid of the process the MMU starts with.
func (b Builder) WithInitialPID(pid vm.PID) Builder {
	b.initialPID = pid
	return b
}

// WithFrameAllocator sets the frame allocator to be used instead of a fresh
// vm.FrameTable.
func (b Builder) WithFrameAllocator(f FrameAllocator) Builder {
	b.frames = f
	return b
}

// WithDataRecorder sets the backend that translation, fault, and switch
// events are recorded to. Without one, nothing is recorded.
func (b Builder) WithDataRecorder(r DataRecorder) Builder {
	b.recorder = r
	return b
}

// Build returns a newly created MMU with a single running process and an
// empty page table.
func (b Builder) Build(name string) *MMU {
	m := &MMU{
		name:        name,
		ptesPerPage: b.ptesPerPage,
		recorder:    b.recorder,
		readyQueue:  list.New(),
	}

	m.frames = b.frames
	if m.frames == nil {
		m.frames = vm.NewFrameTable(b.numFrames)
	}

	capacity := b.tlbCapacity
	if capacity == 0 {
		capacity = b.ptesPerPage * b.ptesPerPage
	}
	m.tlb = tlb.New(capacity)

	m.current = &Process{
		pid:       b.initialPID,
		pageTable: vm.NewPageTable(b.ptesPerPage),
	}
	m.ptbr = m.current.pageTable

	if b.recorder != nil {
		createRecordTables(b.recorder)
	}

	return m
}
