// Package logging provides leveled logging for the tracklist server.
//
// The level is read from the LOG_LEVEL environment variable at first use
// (DEBUG=true also enables debug output) and can be changed at runtime
// with SetLevel.
package logging
