package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/utils"
	"github.com/MKhiriev/go-sync-governor/models"
)

type adaptationResponse struct {
	Changed  bool                       `json:"changed"`
	Change   *models.SyncIntervalConfig `json:"change,omitempty"`
	Interval time.Duration              `json:"interval"`
}

func (h *Handler) getNetworkStatus(w http.ResponseWriter, r *http.Request) {
	network := h.services.NetworkService

	utils.WriteJSON(w, models.NetworkStatus{
		Condition:       network.GetCurrentNetworkCondition(),
		CurrentInterval: network.GetCurrentSyncInterval(),
		IntervalHistory: network.GetSyncIntervalHistory(),
		NetworkHistory:  network.GetNetworkHistory(),
	}, http.StatusOK)
}

func (h *Handler) forceAdaptation(w http.ResponseWriter, r *http.Request) {
	network := h.services.NetworkService

	resp := adaptationResponse{}
	if change, changed := network.ForceAdaptation(r.Context()); changed {
		resp.Changed = true
		resp.Change = &change
	}
	resp.Interval = network.GetCurrentSyncInterval()

	utils.WriteJSON(w, resp, http.StatusOK)
}
