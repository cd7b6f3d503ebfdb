package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tracklist/internal/registry"
	"tracklist/internal/seqlist"

	"github.com/gorilla/mux"
)

type insertRequest struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
}

// InsertTrack places a track into the named tracklist at the requested
// position. Positions beyond the current length are resolved by the
// registry's policy: clamped to the end by default, rejected under the
// strict policy.
func (h *Handlers) InsertTrack(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req insertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		writeJSONError(w, "Title is required", http.StatusBadRequest)
		return
	}

	result, err := h.registry.Insert(name, req.Position, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, seqlist.ErrNegativePosition):
			writeJSONError(w, "Position must not be negative", http.StatusBadRequest)
		case errors.Is(err, seqlist.ErrPositionOutOfRange):
			writeJSONError(w, "Position is out of range", http.StatusBadRequest)
		default:
			writeJSONError(w, "Failed to insert track", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, result)
}

// GetTracks returns the titles of the named tracklist in order.
func (h *Handlers) GetTracks(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	tracks, err := h.registry.Tracks(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			writeJSONError(w, "Tracklist not found", http.StatusNotFound)
			return
		}
		writeJSONError(w, "Failed to read tracklist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, map[string]interface{}{
		"name":   name,
		"tracks": tracks,
		"count":  len(tracks),
	})
}

// GetLength returns the number of tracks in the named tracklist.
func (h *Handlers) GetLength(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	length, err := h.registry.Length(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			writeJSONError(w, "Tracklist not found", http.StatusNotFound)
			return
		}
		writeJSONError(w, "Failed to read tracklist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, map[string]interface{}{
		"name":   name,
		"length": length,
	})
}

// GetFirstTrack returns the first track of the named tracklist.
func (h *Handlers) GetFirstTrack(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	title, err := h.registry.First(name)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrNotFound):
			writeJSONError(w, "Tracklist not found", http.StatusNotFound)
		case errors.Is(err, seqlist.ErrEmptyList):
			writeJSONError(w, "Tracklist is empty", http.StatusNotFound)
		default:
			writeJSONError(w, "Failed to read tracklist", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, map[string]string{
		"name":  name,
		"title": title,
	})
}

// ListTracklists returns every tracklist with its track count.
func (h *Handlers) ListTracklists(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, h.registry.Names())
}
