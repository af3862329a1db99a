package models

// PushRequest is the body of a batch push to the sync server.
type PushRequest struct {
	// Items are the pending changes, highest priority first.
	Items []SyncItem `json:"items"`

	// Length is the number of entries in Items, sent so the server can
	// reject truncated bodies.
	Length int `json:"length"`
}
