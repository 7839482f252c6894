package flow

import (
	"log/slog"
	"sync/atomic"
)

// Holder keeps the active flow. Readers always see a complete flow or nil.
type Holder struct {
	log     *slog.Logger
	current atomic.Pointer[Flow]
}

func NewHolder(log *slog.Logger) *Holder {
	return &Holder{log: log}
}

func (h *Holder) Flow() *Flow {
	return h.current.Load()
}

func (h *Holder) SetFlow(f *Flow) {
	h.current.Store(f)
	if f == nil {
		h.log.Info("Active flow cleared")
		return
	}
	h.log.Info("Active flow set", "start_block_id", f.StartBlockID, "blocks", len(f.Blocks), "name", f.Name())
}
