// Package api provides the HTTP API for the application
package api

import (
	"net/http"

	"pashtolex/internal/modkit"
	"pashtolex/internal/modkit/httpkit"
	"pashtolex/internal/platform/config"
	phttp "pashtolex/internal/platform/net/http"
	dictdom "pashtolex/internal/services/dictionary/domain"
	morphdom "pashtolex/internal/services/morph/domain"

	metamod "pashtolex/internal/services/api/meta/module"
	lookupmod "pashtolex/internal/services/lookup/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Dict           dictdom.ReaderPort
	Morph          morphdom.Capability
	EnableProfiler bool
}

// HealthResponse is the liveness payload served at the API root
type HealthResponse struct {
	OK bool `json:"ok"`
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:   opt.Config,
		Dict:  opt.Dict,
		Morph: opt.Morph,
	}

	mods := []modkit.Module{
		metamod.New(deps),
		lookupmod.New(deps),
	}

	r.Use(httpkit.CommonStack()...)

	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// liveness, no dependency checks
	httpkit.Get(r, "/health", func(_ *http.Request) (any, error) {
		return HealthResponse{OK: true}, nil
	})

	for _, m := range mods {
		m.MountRoutes(r)
	}
}
