package mmu

// A FrameAllocator tracks physical frame reference counts and hands out free
// frames, smallest frame number first. vm.FrameTable is the default
// implementation.
type FrameAllocator interface {
	NumFrames() int
	FindFreeFrame() (pfn int, ok bool)
	Increment(pfn int)
	Decrement(pfn int)
	RefCount(pfn int) int
}

// A DataRecorder is the subset of the data recording backend the MMU uses to
// log translation, fault, and switch events.
type DataRecorder interface {
	CreateTable(tableName string, sampleEntry any)
	InsertData(tableName string, entry any)
}
