// Package http implements the local status and control API of the sync
// daemon.
//
// Routes let the host application enqueue changes, inspect the priority
// queue, trigger a sync pass and read or force the network and storage
// governors. Request tracing, access logging and gzip compression are
// applied before requests reach the service layer.
package http
