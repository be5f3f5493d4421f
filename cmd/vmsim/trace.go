package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/vmsim/simulation"
	"github.com/sarchlab/vmsim/vm"
)

// A trace file holds one operation per line:
//
//	alloc <vpn> r|rw
//	free <vpn>
//	read <vpn>
//	write <vpn>
//	switch <pid>
//
// Blank lines and lines starting with # are skipped.

type opKind int

const (
	opAlloc opKind = iota
	opFree
	opRead
	opWrite
	opSwitch
)

type traceOp struct {
	kind   opKind
	vpn    int
	pid    vm.PID
	rights vm.AccessRights
}

var errSkipLine = errors.New("skip line")

func parseTraceLine(line string) (traceOp, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return traceOp{}, errSkipLine
	}

	fields := strings.Fields(line)

	switch fields[0] {
	case "alloc":
		return parseAlloc(fields)
	case "free":
		vpn, err := parseNumber(fields, "free")
		return traceOp{kind: opFree, vpn: vpn}, err
	case "read":
		vpn, err := parseNumber(fields, "read")
		return traceOp{kind: opRead, vpn: vpn, rights: vm.AccessRead}, err
	case "write":
		vpn, err := parseNumber(fields, "write")
		op := traceOp{
			kind:   opWrite,
			vpn:    vpn,
			rights: vm.AccessRead | vm.AccessWrite,
		}
		return op, err
	case "switch":
		pid, err := parseNumber(fields, "switch")
		return traceOp{kind: opSwitch, pid: vm.PID(pid)}, err
	default:
		return traceOp{}, fmt.Errorf("unknown operation %q", fields[0])
	}
}

func parseAlloc(fields []string) (traceOp, error) {
	if len(fields) != 3 {
		return traceOp{}, errors.New("alloc takes a vpn and r or rw")
	}

	vpn, err := strconv.Atoi(fields[1])
	if err != nil {
		return traceOp{}, fmt.Errorf("bad vpn %q", fields[1])
	}

	op := traceOp{kind: opAlloc, vpn: vpn}
	switch fields[2] {
	case "r":
		op.rights = vm.AccessRead
	case "rw":
		op.rights = vm.AccessRead | vm.AccessWrite
	default:
		return traceOp{}, fmt.Errorf("bad access rights %q", fields[2])
	}

	return op, nil
}

func parseNumber(fields []string, name string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("%s takes exactly one argument", name)
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("bad argument %q", fields[1])
	}

	return n, nil
}

// runTrace replays the trace on the simulation, writing one line of outcome
// per operation. Simulated error conditions (out of frames, protection
// violations) are reported in the output and do not stop the replay; a
// malformed trace line does.
func runTrace(s *simulation.Simulation, r io.Reader, w io.Writer) error {
	m := s.MMU()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		op, err := parseTraceLine(scanner.Text())
		if errors.Is(err, errSkipLine) {
			continue
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		if op.kind != opSwitch &&
			(op.vpn < 0 || op.vpn >= m.PageTable().NumPages()) {
			return fmt.Errorf("line %d: vpn %d is beyond the page range",
				lineNo, op.vpn)
		}

		switch op.kind {
		case opAlloc:
			pfn, err := m.AllocatePage(op.vpn, op.rights)
			reportPFN(w, "alloc", op.vpn, pfn, err)
		case opFree:
			if err := m.FreePage(op.vpn); err != nil {
				fmt.Fprintf(w, "free %d -> %v\n", op.vpn, err)
			} else {
				fmt.Fprintf(w, "free %d -> ok\n", op.vpn)
			}
		case opRead:
			pfn, err := m.Access(op.vpn, op.rights)
			reportPFN(w, "read", op.vpn, pfn, err)
		case opWrite:
			pfn, err := m.Access(op.vpn, op.rights)
			reportPFN(w, "write", op.vpn, pfn, err)
		case opSwitch:
			m.SwitchProcess(op.pid)
			fmt.Fprintf(w, "switch %d -> pid %d running\n", op.pid, op.pid)
		}
	}

	return scanner.Err()
}

func reportPFN(w io.Writer, verb string, vpn, pfn int, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s %d -> %v\n", verb, vpn, err)
		return
	}

	fmt.Fprintf(w, "%s %d -> pfn %d\n", verb, vpn, pfn)
}
