package monitor

//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor

import (
	"context"
	"math"
	"os"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shirou/gopsutil/v4/process"
)

// Stats is a snapshot of the console's own resource usage
type Stats struct {
	CPU        float64
	MEM        float64 // in MB
	Goroutines int
}

// StatsMsg delivers a sample to the bubbletea program
type StatsMsg struct {
	Stats Stats
	Err   error
}

// Monitor samples resource usage of a process
type Monitor interface {
	Sample(ctx context.Context) (Stats, error)
}

type monitor struct {
	pid int
}

// NewMonitor creates a Monitor for the running console process
func NewMonitor() Monitor {
	return NewMonitorFor(os.Getpid())
}

// NewMonitorFor creates a Monitor for the given pid
func NewMonitorFor(pid int) Monitor {
	return &monitor{pid: pid}
}

func (m *monitor) Sample(ctx context.Context) (Stats, error) {
	if m.pid <= 0 || m.pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(m.pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Goroutines: runtime.NumGoroutine()}

	if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
		stats.CPU = cpuPercent
	}

	if memInfo, err := proc.MemoryInfoWithContext(ctx); err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	return stats, nil
}

// Tick samples once after interval and reports the result as a StatsMsg
func Tick(ctx context.Context, m Monitor, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		stats, err := m.Sample(ctx)
		return StatsMsg{Stats: stats, Err: err}
	})
}
