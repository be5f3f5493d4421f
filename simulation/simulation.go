// Package simulation wires the MMU core together with the data recording
// backend and the monitoring server.
package simulation

import (
	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/vm/mmu"
)

// A Simulation bundles everything one simulated machine needs.
type Simulation struct {
	id string

	mmu          *mmu.MMU
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// MMU returns the memory management unit of the simulation.
func (s *Simulation) MMU() *mmu.MMU {
	return s.mmu
}

// GetDataRecorder returns the data recorder used in the simulation. It is
// nil when recording is disabled.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor of the simulation. It is nil when
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// Terminate flushes and closes the data recorder. It must be called when
// the simulation ends.
func (s *Simulation) Terminate() {
	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}
}
