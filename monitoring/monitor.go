// Package monitoring turns a running simulation into a small web server so
// that the MMU state can be inspected from outside while the driver runs.
package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"

	// Enable profiling.
	_ "net/http/pprof"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/vmsim/vm/mmu"
)

// A Monitor exposes the state of an MMU over HTTP. All endpoints are
// read-only; they take the MMU's state lock, so a process switch and its
// TLB flush are never observed half done.
type Monitor struct {
	mmu         *mmu.MMU
	portNumber  int
	openBrowser bool
}

// NewMonitor creates a new Monitor.
func NewMonitor(m *mmu.MMU) *Monitor {
	return &Monitor{mmu: m}
}

// WithPortNumber sets the port number of the monitoring server. Ports below
// 1000 are rejected and replaced with a random port.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowserLaunch makes StartServer open the monitoring page in the
// default browser.
func (m *Monitor) WithBrowserLaunch() *Monitor {
	m.openBrowser = true
	return m
}

// StartServer starts the monitoring server in the background.
func (m *Monitor) StartServer() {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	r := m.router()

	go func() {
		dieOnErr(http.Serve(listener, r))
	}()

	if m.openBrowser {
		dieOnErr(browser.OpenURL(url))
	}
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/frames", m.listFrames)
	r.HandleFunc("/api/tlb", m.listTLB)
	r.HandleFunc("/api/processes", m.listProcesses)
	r.HandleFunc("/api/audit", m.audit)
	r.HandleFunc("/api/state", m.dumpState)
	r.HandleFunc("/api/resource", m.listResources)
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return r
}

type framesRsp struct {
	NumFrames int   `json:"num_frames"`
	RefCounts []int `json:"ref_counts"`
}

func (m *Monitor) listFrames(w http.ResponseWriter, _ *http.Request) {
	frames := m.mmu.Frames()

	m.mmu.Lock()
	rsp := framesRsp{NumFrames: frames.NumFrames()}
	rsp.RefCounts = make([]int, frames.NumFrames())
	for pfn := range rsp.RefCounts {
		rsp.RefCounts[pfn] = frames.RefCount(pfn)
	}
	m.mmu.Unlock()

	writeJSON(w, rsp)
}

type tlbEntryRsp struct {
	VPN int `json:"vpn"`
	PFN int `json:"pfn"`
}

func (m *Monitor) listTLB(w http.ResponseWriter, _ *http.Request) {
	m.mmu.Lock()
	pairs := m.mmu.TLB().Entries()
	m.mmu.Unlock()

	rsp := make([]tlbEntryRsp, 0, len(pairs))
	for _, p := range pairs {
		rsp = append(rsp, tlbEntryRsp{VPN: p[0], PFN: p[1]})
	}

	writeJSON(w, rsp)
}

type processRsp struct {
	PID     uint32 `json:"pid"`
	Current bool   `json:"current"`
}

func (m *Monitor) listProcesses(w http.ResponseWriter, _ *http.Request) {
	procs := m.mmu.Processes()

	rsp := make([]processRsp, 0, len(procs))
	for i, p := range procs {
		rsp = append(rsp, processRsp{PID: uint32(p.PID()), Current: i == 0})
	}

	writeJSON(w, rsp)
}

type auditRsp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (m *Monitor) audit(w http.ResponseWriter, _ *http.Request) {
	rsp := auditRsp{OK: true}
	if err := m.mmu.AuditFrames(); err != nil {
		rsp.OK = false
		rsp.Error = err.Error()
	}

	writeJSON(w, rsp)
}

func (m *Monitor) dumpState(w http.ResponseWriter, _ *http.Request) {
	m.mmu.Lock()
	defer m.mmu.Unlock()

	serializer := goseth.NewSerializer()
	serializer.SetRoot(m.mmu)
	serializer.SetMaxDepth(2)

	dieOnErr(serializer.Serialize(w))
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	p, err := process.NewProcess(int32(os.Getpid()))
	dieOnErr(err)

	cpuPercent, err := p.CPUPercent()
	dieOnErr(err)

	memoryInfo, err := p.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
