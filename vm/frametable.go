package vm

// A FrameTable tracks, for every physical frame, how many valid PTEs across
// all processes point at it. It is the shared state that makes copy-on-write
// bookkeeping possible.
type FrameTable struct {
	counts []int
}

// NewFrameTable creates a frame table for numFrames physical frames, all
// initially free.
func NewFrameTable(numFrames int) *FrameTable {
	if numFrames <= 0 {
		panic("frame table must have at least one frame")
	}

	return &FrameTable{counts: make([]int, numFrames)}
}

// NumFrames returns the number of physical frames tracked.
func (f *FrameTable) NumFrames() int {
	return len(f.counts)
}

// FindFreeFrame returns the lowest-numbered frame with a zero reference
// count. The bool return value is false when every frame is in use.
func (f *FrameTable) FindFreeFrame() (int, bool) {
	for pfn, count := range f.counts {
		if count == 0 {
			return pfn, true
		}
	}

	return 0, false
}

// Increment adds one reference to the frame.
func (f *FrameTable) Increment(pfn int) {
	f.counts[pfn]++
}

// Decrement removes one reference from the frame.
func (f *FrameTable) Decrement(pfn int) {
	if f.counts[pfn] == 0 {
		panic("frame reference count underflow")
	}

	f.counts[pfn]--
}

// RefCount returns the number of references to the frame.
func (f *FrameTable) RefCount(pfn int) int {
	return f.counts[pfn]
}

// FreeFrames returns the number of frames with a zero reference count.
func (f *FrameTable) FreeFrames() int {
	free := 0
	for _, count := range f.counts {
		if count == 0 {
			free++
		}
	}

	return free
}

// Snapshot returns a copy of the per-frame reference counts.
func (f *FrameTable) Snapshot() []int {
	counts := make([]int, len(f.counts))
	copy(counts, f.counts)

	return counts
}
