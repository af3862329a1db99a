package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/service"
	"github.com/MKhiriev/go-sync-governor/internal/utils"
)

// syncNow runs one push pass. A pass skipped because another one is running
// is reported with 409 and the skip report as body.
func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.services.SyncJob.SyncNow(r.Context())
	switch {
	case errors.Is(err, service.ErrSyncInProgress):
		utils.WriteJSON(w, report, http.StatusConflict)
	case err != nil:
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.syncNow").Int("status", status).Msg("sync pass failed")
	default:
		utils.WriteJSON(w, report, http.StatusOK)
	}
}
