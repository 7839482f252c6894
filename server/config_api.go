package server

import (
	"bot-chat/contract"
	"bot-chat/domain/mimetypes"
	"bot-chat/errors"
	"bot-chat/flow"
	"bot-chat/repositories"
	errs "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
)

const maxFlowSize = 1 << 20

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Name    string `json:"name,omitempty"`
	ID      string `json:"id,omitempty"`
}

// ConfigAPI uploads and serves the flow driving the bot.
type ConfigAPI struct {
	log     *slog.Logger
	repo    repositories.IFlowRepository
	flows   contract.FlowSetter
	metrics *Metrics
}

func NewConfigAPI(log *slog.Logger, repo repositories.IFlowRepository, flows contract.FlowSetter, metrics *Metrics) *ConfigAPI {
	return &ConfigAPI{log: log, repo: repo, flows: flows, metrics: metrics}
}

// Upload stores the posted flow and makes it the active one for every session.
func (a *ConfigAPI) Upload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxFlowSize))
	if err != nil {
		a.reject(w, err)
		return
	}

	doc, err := ImportFlow(a.repo, a.flows, body)
	if err != nil {
		a.reject(w, err)
		return
	}
	a.metrics.FlowUploads.WithLabelValues("success").Inc()
	a.log.Info("Flow uploaded", "id", doc.ID, "name", doc.Name, "version", doc.Version)
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "success",
		Message: "Configuration saved successfully",
		Name:    doc.Name,
		ID:      doc.ID.String(),
	})
}

// Active returns the raw JSON of the active flow.
func (a *ConfigAPI) Active(w http.ResponseWriter, _ *http.Request) {
	doc, err := a.repo.Active()
	if errs.Is(err, errors.ErrNoActiveFlow) {
		writeJSON(w, http.StatusNotFound, statusResponse{
			Status:  "not_found",
			Message: "No active configuration found",
		})
		return
	}
	if err != nil {
		a.log.Error("Unable to read active flow", "error", err)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, doc.JSON)
}

func (a *ConfigAPI) reject(w http.ResponseWriter, err error) {
	a.metrics.FlowUploads.WithLabelValues("rejected").Inc()
	a.log.Warn("Flow upload rejected", "error", err)
	writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: err.Error()})
}

// ImportFlow checks raw as a flow document, saves it as the active one and
// hands the decoded flow to the setter.
func ImportFlow(repo repositories.IFlowRepository, flows contract.FlowSetter, raw []byte) (repositories.FlowDocument, error) {
	detected := mimetype.Detect(raw).String()
	if _, ok := mimetypes.Matches(detected, mimetypes.ApplicationJSON); !ok {
		return repositories.FlowDocument{}, fmt.Errorf("%w: detected %s", errors.ErrNotJSON, detected)
	}
	f, err := flow.Decode(raw)
	if err != nil {
		return repositories.FlowDocument{}, err
	}
	name := f.Name()
	if name == "" {
		return repositories.FlowDocument{}, errors.ErrMissingFlowName
	}
	if err := f.Validate(); err != nil {
		return repositories.FlowDocument{}, err
	}
	doc, err := repo.Save(name, raw)
	if err != nil {
		return repositories.FlowDocument{}, err
	}
	flows.SetFlow(&f)
	return doc, nil
}

// LoadActiveFlow restores the active flow at startup. Without a stored flow
// and with a seed file, the seed is imported first.
func LoadActiveFlow(log *slog.Logger, repo repositories.IFlowRepository, flows contract.FlowSetter, seed []byte) error {
	doc, err := repo.Active()
	switch {
	case errs.Is(err, errors.ErrNoActiveFlow) && len(seed) > 0:
		doc, err = ImportFlow(repo, flows, seed)
		if err != nil {
			return fmt.Errorf("seed flow: %w", err)
		}
		log.Info("Seed flow imported", "id", doc.ID, "name", doc.Name)
		return nil
	case errs.Is(err, errors.ErrNoActiveFlow):
		log.Warn("No active flow, the bot stays silent until one is uploaded")
		return nil
	case err != nil:
		return err
	}

	f, err := flow.Decode([]byte(doc.JSON))
	if err != nil {
		return err
	}
	flows.SetFlow(&f)
	log.Info("Active flow loaded", "id", doc.ID, "name", doc.Name, "version", doc.Version)
	return nil
}
