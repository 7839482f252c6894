package server

import (
	"bot-chat/contract"
	"bot-chat/domain"
	"bot-chat/repositories"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// Health keeps the latest process sample pushed by the sampler worker.
type Health struct {
	log     *slog.Logger
	flows   contract.FlowProvider
	repo    repositories.IFlowRepository
	started time.Time
	latest  atomic.Pointer[domain.ProcessStats]
}

type healthResponse struct {
	Status  string               `json:"status"`
	Uptime  string               `json:"uptime"`
	Process *domain.ProcessStats `json:"process,omitempty"`
	Flow    *activeFlow          `json:"flow,omitempty"`
}

type activeFlow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version int    `json:"version"`
}

func NewHealth(log *slog.Logger, flows contract.FlowProvider, repo repositories.IFlowRepository) *Health {
	return &Health{log: log, flows: flows, repo: repo, started: time.Now()}
}

func (h *Health) Record(stats domain.ProcessStats) {
	h.latest.Store(&stats)
}

// Latest returns the last recorded sample, false until the sampler has run once.
func (h *Health) Latest() (domain.ProcessStats, bool) {
	stats := h.latest.Load()
	if stats == nil {
		return domain.ProcessStats{}, false
	}
	return *stats, true
}

// ServeHTTP answers UP once a flow is loaded, NO_FLOW otherwise.
// Both are 200: the server is alive either way.
func (h *Health) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	response := healthResponse{
		Status: "UP",
		Uptime: time.Since(h.started).Round(time.Second).String(),
	}
	if stats, ok := h.Latest(); ok {
		response.Process = &stats
	}
	if h.flows.Flow() == nil {
		response.Status = "NO_FLOW"
	} else if doc, err := h.repo.Active(); err == nil {
		response.Flow = &activeFlow{ID: doc.ID.String(), Name: doc.Name, Version: doc.Version}
	} else {
		h.log.Debug("Active flow document unavailable", "error", err)
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
