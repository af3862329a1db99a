// Package daemon assembles the sync daemon.
//
// It wires the priority scheduler, the adaptive interval controller and the
// storage governor to the local database, the sync server transport and the
// status API, and runs them as one process lifecycle.
package daemon
