package workers

import (
	"bot-chat/domain"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// StatsRecorder receives every process sample.
type StatsRecorder interface {
	Record(stats domain.ProcessStats)
}

// HealthSamplerWorker samples CPU, RSS and status of the server process.
type HealthSamplerWorker struct {
	log      *slog.Logger
	recorder StatsRecorder
	interval time.Duration
	pid      int32
}

func NewHealthSamplerWorker(log *slog.Logger, recorder StatsRecorder, interval time.Duration) *HealthSamplerWorker {
	return &HealthSamplerWorker{log: log, recorder: recorder, interval: interval, pid: int32(os.Getpid())}
}

// Run samples once right away then on every tick.
func (w *HealthSamplerWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sample(p)
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health sampling")
			return nil
		case <-ticker.C:
			w.sample(p)
		}
	}
}

func (w *HealthSamplerWorker) sample(p *process.Process) {
	stats, err := selfStats(p)
	if err != nil {
		w.log.Error("Failed to collect self stats", "err", err)
		return
	}
	w.recorder.Record(stats)
}

func selfStats(p *process.Process) (domain.ProcessStats, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return domain.ProcessStats{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return domain.ProcessStats{}, err
	}
	status, err := p.Status()
	if err != nil {
		return domain.ProcessStats{}, err
	}
	return domain.ProcessStats{
		PID:       domain.PID(p.Pid),
		Status:    domain.ToStatus(status),
		CPU:       cpuPercent,
		RSS:       memInfo.RSS,
		SampledAt: time.Now().UTC(),
	}, nil
}
