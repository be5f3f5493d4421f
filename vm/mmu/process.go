package mmu

import "github.com/sarchlab/vmsim/vm"

// A Process is a simulated process: a pid and the page table it exclusively
// owns. Processes are created by the MMU, either at build time (the initial
// process) or by forking during a switch to an unknown pid.
type Process struct {
	pid       vm.PID
	pageTable *vm.PageTable
}

// PID returns the process ID.
func (p *Process) PID() vm.PID {
	return p.pid
}

// PageTable returns the page table owned by the process.
func (p *Process) PageTable() *vm.PageTable {
	return p.pageTable
}
