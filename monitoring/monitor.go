// Package monitoring turns a running simulation into a small HTTP server so
// the timeline and paging metrics can be watched from outside the process.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"

	"github.com/sarchlab/vmsim/timing"
	"github.com/sarchlab/vmsim/vm"
)

// Monitor exposes the state of a simulation clock over HTTP.
type Monitor struct {
	clock      *timing.Clock
	portNumber int
	url        string
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitoring server. Ports below
// 1000 are rejected and a random port is used instead.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterClock registers the clock whose state is served.
func (m *Monitor) RegisterClock(c *timing.Clock) {
	m.clock = c
}

// StartServer starts the monitoring server in the background and returns
// the URL it listens on.
func (m *Monitor) StartServer() string {
	if m.clock == nil {
		panic("no clock registered with the monitor")
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", m.portNumber))
	if err != nil {
		panic(err)
	}

	port := listener.Addr().(*net.TCPAddr).Port
	m.url = fmt.Sprintf("http://localhost:%d", port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", m.url)

	go func() {
		err := http.Serve(listener, m.routes())
		if err != nil {
			panic(err)
		}
	}()

	return m.url
}

// OpenDashboard opens the monitoring URL in the default browser.
func (m *Monitor) OpenDashboard() {
	if m.url == "" {
		panic("monitoring server is not started")
	}

	err := browser.OpenURL(m.url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open browser: %s\n", err)
	}
}

func (m *Monitor) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/now", m.nowHandler)
	r.HandleFunc("/api/metrics", m.metricsHandler)

	return r
}

type statusResponse struct {
	Now     int64      `json:"now"`
	Policy  string     `json:"policy"`
	Frames  int        `json:"frames"`
	Metrics vm.Metrics `json:"metrics"`
}

func (m *Monitor) nowHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]int64{"now": m.clock.Now()})
}

func (m *Monitor) metricsHandler(w http.ResponseWriter, _ *http.Request) {
	directory := m.clock.Directory()
	writeJSON(w, statusResponse{
		Now:     m.clock.Now(),
		Policy:  directory.Policy().String(),
		Frames:  directory.FrameCount(),
		Metrics: m.clock.Metrics(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
