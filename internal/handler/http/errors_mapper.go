package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-governor/internal/app"
	"github.com/MKhiriev/go-sync-governor/internal/governor"
	"github.com/MKhiriev/go-sync-governor/internal/service"
	"github.com/MKhiriev/go-sync-governor/internal/store"
	"github.com/MKhiriev/go-sync-governor/internal/utils"
	"github.com/MKhiriev/go-sync-governor/internal/validators"
)

// errorStatuses is ordered: the first matching sentinel wins, so specific
// causes are listed before the generic query errors that wrap them.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
	{ErrEmptyItemID, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrItemExists, http.StatusConflict},
	{service.ErrItemNotFound, http.StatusNotFound},
	{service.ErrStorageFull, http.StatusInsufficientStorage},
	{service.ErrSyncInProgress, http.StatusConflict},
	{service.ErrPushFailed, http.StatusBadGateway},

	{governor.ErrArchiveInProgress, http.StatusConflict},
	{governor.ErrNoHousekeeper, http.StatusNotImplemented},

	{store.ErrRetryable, http.StatusServiceUnavailable},
	{store.ErrItemNotFound, http.StatusNotFound},
	{store.ErrItemsNotSaved, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusMessages keeps server-side details out of 5xx response bodies.
var statusMessages = map[int]string{
	http.StatusInternalServerError: app.MsgInternalServerError,
	http.StatusServiceUnavailable:  app.MsgStorageBusy,
	http.StatusInsufficientStorage: app.MsgStorageFull,
	http.StatusBadGateway:          app.MsgSyncServerUnavailable,
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError responds with the status mapped from err. Validation failures
// carry per-field messages.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)

	resp := errorResponse{Error: err.Error()}
	if msg, ok := statusMessages[status]; ok {
		resp.Error = msg
	}

	var fields validators.FieldErrors
	if errors.As(err, &fields) {
		resp.Error = app.MsgInvalidDataProvided
		resp.Fields = fields
	}

	_, _ = utils.WriteJSON(w, resp, status)
	return status
}
