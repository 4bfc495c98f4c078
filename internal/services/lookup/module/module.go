// Package module wires the lookup endpoints into the API
package module

import (
	"net/http"

	"pashtolex/internal/modkit"
	"pashtolex/internal/modkit/httpkit"
	str "pashtolex/internal/platform/strings"
	lookuphttp "pashtolex/internal/services/lookup/http"
	"pashtolex/internal/services/lookup/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	svc    *service.Service
}

// New constructs the lookup module. The lookup endpoints own the API root,
// so the default prefix is empty.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("lookup"),
	}, opts...)...)

	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    service.New(deps.Dict, deps.Morph),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		lookuphttp.Register(rr, lookuphttp.Deps{Reader: m.svc})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "lookup") }
