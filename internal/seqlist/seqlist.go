package seqlist

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrEmptyList is returned when a read assumes at least one element
	// and the list has none.
	ErrEmptyList = errors.New("seqlist: empty list")

	// ErrNegativePosition is returned by InsertAt for positions below zero.
	ErrNegativePosition = errors.New("seqlist: negative position")

	// ErrPositionOutOfRange is returned by InsertAt under RejectOutOfRange
	// when the position is past the current length.
	ErrPositionOutOfRange = errors.New("seqlist: position out of range")
)

// Policy controls how InsertAt treats positions beyond the current length.
type Policy int

const (
	// ClampToEnd resolves an out-of-range position to the end of the list.
	ClampToEnd Policy = iota
	// RejectOutOfRange fails insertions past the current length.
	RejectOutOfRange
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case ClampToEnd:
		return "clamp"
	case RejectOutOfRange:
		return "strict"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ParsePolicy parses a policy name as used in configuration ("clamp" or
// "strict").
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "clamp":
		return ClampToEnd, nil
	case "strict":
		return RejectOutOfRange, nil
	default:
		return ClampToEnd, fmt.Errorf("unknown position policy %q", s)
	}
}

// node holds one element and exclusively owns its successor.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked sequence of values. The zero value is an empty
// list with the ClampToEnd policy.
type List[T any] struct {
	head   *node[T]
	policy Policy
}

// New returns an empty list using the ClampToEnd policy.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWithPolicy returns an empty list using the given insertion policy.
func NewWithPolicy[T any](p Policy) *List[T] {
	return &List[T]{policy: p}
}

// Policy returns the list's insertion policy.
func (l *List[T]) Policy() Policy {
	return l.policy
}

// Len returns the number of elements by walking the chain.
func (l *List[T]) Len() int {
	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// InsertAt links value into the chain so that it becomes the element at
// index min(position, Len()). Exactly one node is allocated and the
// relative order of existing elements is preserved.
//
// Under RejectOutOfRange, positions greater than Len() fail with
// ErrPositionOutOfRange instead of clamping; position == Len() is still a
// valid append. Negative positions fail under both policies.
func (l *List[T]) InsertAt(position int, value T) error {
	if position < 0 {
		return ErrNegativePosition
	}
	if l.policy == RejectOutOfRange && position > l.Len() {
		return fmt.Errorf("%w: %d > length %d", ErrPositionOutOfRange, position, l.Len())
	}

	if position == 0 || l.head == nil {
		l.head = &node[T]{value: value, next: l.head}
		return nil
	}

	// Walk to the node after which the new one is linked. Running off the
	// end stops at the last node, which is what clamping means.
	prev := l.head
	for i := 1; i < position && prev.next != nil; i++ {
		prev = prev.next
	}
	prev.next = &node[T]{value: value, next: prev.next}
	return nil
}

// First returns the first element, or ErrEmptyList when there is none.
func (l *List[T]) First() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	return l.head.value, nil
}

// Values returns a lazy iterator over the elements in chain order. Each
// call starts a fresh traversal, so the sequence is restartable; breaking
// out early is supported. The list must not be mutated while iterating.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Slice returns the elements as a new slice in chain order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}
