// Package metrics records layoutsync run metrics.
//
// Components receive a Recorder and default to NoopRecorder, so no nil checks
// are needed at call sites. The Prometheus implementation registers its
// collectors on a caller-supplied registry; because a sync run is a short-lived
// process, WriteTextfile exports that registry in the text exposition format
// for the node_exporter textfile collector instead of serving it over HTTP.
package metrics
