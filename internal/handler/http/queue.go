package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/utils"
	"github.com/MKhiriev/go-sync-governor/models"
)

// maxItemBodySize caps a single enqueue request after gzip inflation.
const maxItemBodySize = 1 << 20

type queueResponse struct {
	Items  []models.SyncItem `json:"items"`
	Length int               `json:"length"`
}

func (h *Handler) enqueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxItemBodySize)

	var item models.NewSyncItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Str("func", "*Handler.enqueue").Int64("limit", tooLarge.Limit).Msg("request body too large")
			writeError(w, ErrBodyTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.enqueue").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	scored, err := h.services.OutboxService.Enqueue(ctx, item)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.enqueue").Int("status", status).Msg("error enqueueing sync item")
		return
	}

	utils.WriteJSON(w, scored, http.StatusCreated)
}

func (h *Handler) listQueue(w http.ResponseWriter, r *http.Request) {
	items := h.services.OutboxService.Pending(r.Context())
	if items == nil {
		items = []models.SyncItem{}
	}

	utils.WriteJSON(w, queueResponse{Items: items, Length: len(items)}, http.StatusOK)
}

func (h *Handler) queueStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.OutboxService.Stats(r.Context()), http.StatusOK)
}

func (h *Handler) discard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, ErrEmptyItemID)
		return
	}

	item, err := h.services.OutboxService.Discard(ctx, id)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.discard").Str("id", id).Int("status", status).Msg("error discarding sync item")
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
