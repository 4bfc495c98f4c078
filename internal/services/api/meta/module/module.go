// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	"pashtolex/internal/modkit"
	"pashtolex/internal/modkit/httpkit"
	str "pashtolex/internal/platform/strings"
	metahttp "pashtolex/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		startedAt: time.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		var probe metahttp.CacheProbe
		if p, ok := m.deps.Dict.(metahttp.CacheProbe); ok {
			probe = p
		}
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: "pashtolex-api",
			StartedAt:   m.startedAt,
			Dict:        probe,
			Morph:       m.deps.Morph,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }
