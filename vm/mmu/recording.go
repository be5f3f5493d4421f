package mmu

import (
	"github.com/rs/xid"

	"github.com/sarchlab/vmsim/vm"
)

// Table names used in the data recording backend.
const (
	translationTable = "translations"
	faultTable       = "faults"
	switchTable      = "switches"
)

// A TranslationRecord logs one successful translation.
type TranslationRecord struct {
	ID     string
	PID    uint32
	VPN    int
	PFN    int
	Write  bool
	TLBHit bool
}

// A FaultRecord logs one invocation of the fault handler and how it was
// resolved: promoted, copied, protection-violation, no-directory,
// invalid-pte, out-of-frames, unreferenced-frame, or unexpected.
type FaultRecord struct {
	ID         string
	PID        uint32
	VPN        int
	Write      bool
	Resolution string
}

// A SwitchRecord logs one process switch.
type SwitchRecord struct {
	ID      string
	FromPID uint32
	ToPID   uint32
	Forked  bool
}

func createRecordTables(recorder DataRecorder) {
	recorder.CreateTable(translationTable, TranslationRecord{})
	recorder.CreateTable(faultTable, FaultRecord{})
	recorder.CreateTable(switchTable, SwitchRecord{})
}

func (m *MMU) recordTranslation(vpn, pfn int, rights vm.AccessRights, hit bool) {
	if m.recorder == nil {
		return
	}

	m.recorder.InsertData(translationTable, TranslationRecord{
		ID:     xid.New().String(),
		PID:    uint32(m.current.pid),
		VPN:    vpn,
		PFN:    pfn,
		Write:  rights.CanWrite(),
		TLBHit: hit,
	})
}

func (m *MMU) recordFault(vpn int, rights vm.AccessRights, resolution string) {
	if m.recorder == nil {
		return
	}

	m.recorder.InsertData(faultTable, FaultRecord{
		ID:         xid.New().String(),
		PID:        uint32(m.current.pid),
		VPN:        vpn,
		Write:      rights.CanWrite(),
		Resolution: resolution,
	})
}

func (m *MMU) recordSwitch(from, to vm.PID, forked bool) {
	if m.recorder == nil {
		return
	}

	m.recorder.InsertData(switchTable, SwitchRecord{
		ID:      xid.New().String(),
		FromPID: uint32(from),
		ToPID:   uint32(to),
		Forked:  forked,
	})
}
