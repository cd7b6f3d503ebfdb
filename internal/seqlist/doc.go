// Package seqlist implements a singly linked ordered sequence with
// position-based insertion.
//
// The list deliberately caches nothing: Len walks the chain every time,
// and every insertion finds its splice point by traversal. This keeps the
// structure a plain ownership chain (each node exclusively owns its
// successor) with no derived state to fall out of sync.
//
// # Insertion policies
//
// InsertAt accepts any non-negative position. How positions beyond the
// current length are handled depends on the list's policy:
//
//   - ClampToEnd (the default): the value is appended. A playlist user who
//     asks for slot 100 of a 3-track list gets their track at the end, not
//     an error.
//   - RejectOutOfRange: positions past the current length fail with
//     ErrPositionOutOfRange. Intended for callers where a silently moved
//     insertion point would corrupt meaning (strict orderings).
//
// Negative positions are rejected under both policies.
//
// # Concurrency
//
// A List is not safe for concurrent use. Callers that share a list across
// goroutines must serialize access themselves; see the registry package
// for the locking discipline this repo uses.
package seqlist
