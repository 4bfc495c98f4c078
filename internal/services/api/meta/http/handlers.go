// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"pashtolex/internal/core/version"
	"pashtolex/internal/modkit/httpkit"
)

// CacheProbe is satisfied by the dictionary cache
type CacheProbe interface {
	Ready() bool
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Dict        CacheProbe
	Morph       any
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok cold skipped unknown
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	OK     bool         `json:"ok"`
	Status string       `json:"status"` // ok degraded
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// VersionResponse reports build info
type VersionResponse struct {
	OK    bool              `json:"ok"`
	Build version.BuildInfo `json:"build"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	OK      bool   `json:"ok"`
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

// ready reports dependency state without side effects. A cold dictionary
// cache is degraded, not failed; the first lookup will warm it.
func (h *handlers) ready(_ *http.Request) (any, error) {
	checks := make([]ReadyCheck, 0, 2)

	dict := ReadyCheck{Name: "dictionary", Status: "skipped"}
	if h.deps.Dict != nil {
		dict.Status = "cold"
		if h.deps.Dict.Ready() {
			dict.Status = "ok"
		}
	}
	checks = append(checks, dict)

	morph := ReadyCheck{Name: "morphology", Status: "skipped"}
	if h.deps.Morph != nil {
		morph.Status = "ok"
	}
	checks = append(checks, morph)

	status := "ok"
	for _, c := range checks {
		if c.Status != "ok" {
			status = "degraded"
			break
		}
	}
	return ReadyResponse{OK: true, Status: status, Checks: checks, Now: time.Now().UTC().Format(time.RFC3339)}, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return VersionResponse{OK: true, Build: version.Info()}, nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		OK:      true,
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt).Seconds()),
	}, nil
}
