package handlers

import (
	"time"

	"tracklist/internal/registry"
)

type Handlers struct {
	registry  *registry.Registry
	startTime time.Time
}

func New(reg *registry.Registry) *Handlers {
	return &Handlers{
		registry:  reg,
		startTime: time.Now(),
	}
}
