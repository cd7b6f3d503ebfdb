// Package registry holds every tracklist in process memory and serializes
// access to them.
//
// The underlying seqlist.List is single-threaded; the registry's mutex is
// the exclusive-access discipline that makes it safe to serve from HTTP
// handlers. Nothing is persisted: a restart starts empty.
//
// A tracklist comes into existence on its first successful insert. Reads
// of a name that was never inserted into fail with ErrNotFound rather than
// fabricating an empty tracklist.
package registry
