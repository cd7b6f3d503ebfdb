// Package handlers implements the HTTP API for the tracklist server:
// track insertion and ordered reads over the registry, plus health,
// version, and metrics endpoints.
package handlers
