package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"tracklist/internal/logging"
	"tracklist/internal/metrics"
	"tracklist/internal/seqlist"
)

// ErrNotFound is returned when a read names a tracklist that does not exist.
var ErrNotFound = errors.New("registry: tracklist not found")

// Summary describes one tracklist for listing endpoints.
type Summary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// InsertResult reports where an insert actually landed.
type InsertResult struct {
	// Index is the position the track ended up at, after any clamping.
	Index int `json:"index"`
	// Length is the tracklist length after the insert.
	Length int `json:"length"`
	// Clamped reports whether the requested position was beyond the end
	// and got resolved to an append.
	Clamped bool `json:"clamped"`
}

// Registry is the in-memory collection of named tracklists. A single
// mutex serializes all operations; the lists themselves assume exclusive
// access for the duration of each call.
type Registry struct {
	mu     sync.Mutex
	lists  map[string]*seqlist.List[string]
	policy seqlist.Policy
}

// New returns an empty registry. New tracklists inherit the given
// insertion policy.
func New(policy seqlist.Policy) *Registry {
	return &Registry{
		lists:  make(map[string]*seqlist.List[string]),
		policy: policy,
	}
}

// Policy returns the insertion policy applied to new tracklists.
func (r *Registry) Policy() seqlist.Policy {
	return r.policy
}

// Insert places title into the named tracklist at the requested position,
// creating the tracklist if this is its first track. The tracklist is only
// created when the insert itself succeeds, so a rejected position never
// leaves an empty tracklist behind.
func (r *Registry) Insert(name string, position int, title string) (InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[name]
	if !ok {
		list = seqlist.NewWithPolicy[string](r.policy)
	}

	length := list.Len()
	if err := list.InsertAt(position, title); err != nil {
		metrics.InsertsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return InsertResult{}, fmt.Errorf("insert into %q: %w", name, err)
	}
	r.lists[name] = list

	result := InsertResult{
		Index:   position,
		Length:  length + 1,
		Clamped: position > length,
	}
	if result.Clamped {
		result.Index = length
		metrics.InsertsClampedTotal.Inc()
	}

	switch {
	case result.Index == 0:
		metrics.InsertsTotal.WithLabelValues(metrics.OutcomeFront).Inc()
	case result.Index == length:
		metrics.InsertsTotal.WithLabelValues(metrics.OutcomeAppend).Inc()
	default:
		metrics.InsertsTotal.WithLabelValues(metrics.OutcomeSplice).Inc()
	}
	metrics.TracklistLength.WithLabelValues(name).Set(float64(result.Length))

	logging.Debug("inserted %q into %q at index %d (requested %d)", title, name, result.Index, position)
	return result, nil
}

// Tracks returns the titles of the named tracklist in chain order.
func (r *Registry) Tracks(name string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	metrics.TraversalsTotal.Inc()
	return list.Slice(), nil
}

// Length returns the number of tracks in the named tracklist.
func (r *Registry) Length(name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	metrics.TraversalsTotal.Inc()
	return list.Len(), nil
}

// First returns the first track of the named tracklist.
func (r *Registry) First(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return list.First()
}

// Names returns a summary of every tracklist, sorted by name.
func (r *Registry) Names() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := make([]Summary, 0, len(r.lists))
	for name, list := range r.lists {
		summaries = append(summaries, Summary{Name: name, Count: list.Len()})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries
}
