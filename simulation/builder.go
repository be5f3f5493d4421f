package simulation

import (
	"github.com/rs/xid"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/vm/mmu"
)

// Builder can be used to build a simulation.
type Builder struct {
	numFrames      int
	ptesPerPage    int
	tlbCapacity    int
	monitorOn      bool
	monitorPort    int
	recordingOn    bool
	outputFileName string
}

// MakeBuilder creates a new builder with 128 frames, 16 PTEs per page, and
// recording enabled.
func MakeBuilder() Builder {
	return Builder{
		numFrames:   128,
		ptesPerPage: 16,
		recordingOn: true,
	}
}

// WithNumFrames sets the number of physical frames to simulate.
func (b Builder) WithNumFrames(n int) Builder {
	b.numFrames = n
	return b
}

// WithPTEsPerPage sets the arity of the two page table levels.
func (b Builder) WithPTEsPerPage(n int) Builder {
	b.ptesPerPage = n
	return b
}

// WithTLBCapacity sets the number of entries the TLB can hold.
func (b Builder) WithTLBCapacity(n int) Builder {
	b.tlbCapacity = n
	return b
}

// WithMonitoring enables the monitoring server.
func (b Builder) WithMonitoring() Builder {
	b.monitorOn = true
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithoutRecording disables data recording.
func (b Builder) WithoutRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data
// recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{id: xid.New().String()}

	mmuBuilder := mmu.MakeBuilder().
		WithNumFrames(b.numFrames).
		WithPTEsPerPage(b.ptesPerPage).
		WithTLBCapacity(b.tlbCapacity)

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "vmsim_" + s.id
		}

		s.dataRecorder = datarecording.New(outputPath)
		mmuBuilder = mmuBuilder.WithDataRecorder(s.dataRecorder)
	}

	s.mmu = mmuBuilder.Build("MMU")

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor(s.mmu)
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.StartServer()
	}

	return s
}
