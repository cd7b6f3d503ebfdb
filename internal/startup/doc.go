// Package startup handles environment-based configuration and build
// information for the tracklist server.
package startup
