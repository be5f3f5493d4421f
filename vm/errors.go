package vm

import "errors"

// Error conditions reported by the translation core. All of them are
// returned to the caller; none of them terminates the simulation.
var (
	// ErrOutOfFrames is returned by allocation paths when no physical frame
	// has a zero reference count. The caller may recover, e.g. by freeing
	// pages and retrying.
	ErrOutOfFrames = errors.New("no free physical frame")

	// ErrProtectionViolation is returned when a write is attempted on a page
	// that was allocated read-only.
	ErrProtectionViolation = errors.New("write to a read-only page")

	// ErrInconsistentMapping indicates that an operation reached a virtual
	// page whose directory or PTE is not in the state the operation
	// requires. It signals a usage error in the driving framework rather
	// than a legitimate runtime condition.
	ErrInconsistentMapping = errors.New("inconsistent page mapping")

	// ErrTranslationFault is returned by translation when the page table
	// cannot satisfy the access. The caller is expected to run the fault
	// handler and retry.
	ErrTranslationFault = errors.New("translation fault")
)
