package domain

import "time"

type PID int32
type PidStatus string

const (
	RUNNING PidStatus = "RUNNING"
	SLEEP   PidStatus = "SLEEP"
	STOP    PidStatus = "STOP"
	IDLE    PidStatus = "IDLE"
	ZOMBIE  PidStatus = "ZOMBIE"
	WAIT    PidStatus = "WAIT"
	LOCK    PidStatus = "LOCK"
	UNKNOWN PidStatus = "UNKNOWN"
)

// ProcessStats is one sample of the server's own process.
type ProcessStats struct {
	PID       PID       `json:"pid"`
	Status    PidStatus `json:"status"`
	CPU       float64   `json:"cpuPercent"`
	RSS       uint64    `json:"rssBytes"`
	SampledAt time.Time `json:"sampledAt"`
}

// ToStatus maps the one letter status reported by gopsutil.
func ToStatus(status string) PidStatus {
	switch status {
	case "R":
		return RUNNING
	case "S":
		return SLEEP
	case "T":
		return STOP
	case "I":
		return IDLE
	case "Z":
		return ZOMBIE
	case "W":
		return WAIT
	case "L":
		return LOCK
	default:
		return UNKNOWN
	}
}
