package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/utils"
	"github.com/MKhiriev/go-sync-governor/models"
)

type storageResponse struct {
	Stats    models.StorageStats    `json:"stats"`
	Band     models.StorageBand     `json:"band"`
	Cleanups []models.CleanupReport `json:"cleanups"`
	Archives []models.ArchiveReport `json:"archives"`
}

type cleanupResponse struct {
	Ran    bool                  `json:"ran"`
	Report *models.CleanupReport `json:"report,omitempty"`
}

func (h *Handler) getStorageStats(w http.ResponseWriter, r *http.Request) {
	storage := h.services.StorageService
	stats := storage.GetStorageStats(r.Context())

	utils.WriteJSON(w, storageResponse{
		Stats:    stats,
		Band:     stats.Quota.Band(),
		Cleanups: storage.GetCleanupHistory(),
		Archives: storage.GetArchiveHistory(),
	}, http.StatusOK)
}

// forceCleanup answers 200 even when no pass ran because one was already in
// flight; Ran tells the two apart.
func (h *Handler) forceCleanup(w http.ResponseWriter, r *http.Request) {
	resp := cleanupResponse{}
	if report, ran := h.services.StorageService.ForceCleanup(r.Context()); ran {
		resp.Ran = true
		resp.Report = &report
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) forceArchive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.services.StorageService.ForceArchive(r.Context())
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.forceArchive").Int("status", status).Msg("archive failed")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
