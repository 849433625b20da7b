// Package dev implements the Rynex development server.
//
// The dev server compiles the project, runs the resulting app process,
// and proxies browser requests to it. A polling file watcher triggers
// rebuilds; connected browsers are told to reload over a WebSocket
// channel at /_rynex/reload. Build errors are pushed to the browser as
// an overlay instead of a dead page.
//
// The server also exposes Prometheus metrics at /_rynex/metrics
// (rebuild counts and durations, reload client counts, proxied request
// latencies) and emits OpenTelemetry spans around rebuilds.
package dev
