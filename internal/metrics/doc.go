// Package metrics provides Prometheus instrumentation for the tracklist
// server. All metrics are prefixed with "tracklist_".
//
// Insert metrics record where insertions land:
//   - InsertsTotal: counter by outcome (front, splice, append, rejected)
//   - InsertsClampedTotal: counter of inserts whose requested position was
//     beyond the current length and got resolved to the end
//   - TracklistLength: gauge of current track count per tracklist
//
// Read metrics:
//   - TraversalsTotal: counter of full chain traversals served
//
// HTTP metrics follow the usual request total / duration / in-flight trio.
//
// Metrics register with the default Prometheus registry via promauto;
// expose them by mounting promhttp.Handler() on /metrics.
package metrics
