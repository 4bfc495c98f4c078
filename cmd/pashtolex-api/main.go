package main

import (
	"context"

	"pashtolex/internal/core/inflect"
	"pashtolex/internal/platform/config"
	"pashtolex/internal/platform/logger"
	phttp "pashtolex/internal/platform/net/http"

	"pashtolex/internal/services/api"
	dictsource "pashtolex/internal/services/dictionary/source"
	dictsvc "pashtolex/internal/services/dictionary/service"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	dictCfg := root.Prefix("DICT_")

	// bring up logging early
	l := logger.Get()

	// dictionary cache over the remote source (reads DICT_URL)
	dict := dictsvc.New(dictsource.NewClient(dictsource.Options{
		URL: dictCfg.MayString("URL", ""),
	}))

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Dict:           dict,
			Morph:          inflect.New(),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
