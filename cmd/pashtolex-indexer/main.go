package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"pashtolex/internal/core/inflect"
	"pashtolex/internal/platform/config"
	"pashtolex/internal/platform/logger"

	dictsource "pashtolex/internal/services/dictionary/source"
	dictsvc "pashtolex/internal/services/dictionary/service"
	idxsvc "pashtolex/internal/services/indexer/service"
)

func main() {
	root := config.New()
	dictCfg := root.Prefix("DICT_")
	idxCfg := root.Prefix("CORE_INDEXER_")

	l := logger.Get()

	var (
		fOut    = flag.String("out", idxCfg.MayString("OUT", "data"), "directory the index artifacts are written to")
		fReport = flag.String("report", "", "also write the build report as JSON to this path")
	)
	flag.Parse()

	dict := dictsvc.New(dictsource.NewClient(dictsource.Options{
		URL: dictCfg.MayString("URL", ""),
	}))

	svc := idxsvc.New(dict, inflect.New())
	report, err := svc.Run(context.Background(), *fOut)
	if err != nil {
		l.Panic().Err(err).Msg("index build failed")
	}

	if *fReport != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			l.Panic().Err(err).Msg("marshal build report")
		}
		if err := os.WriteFile(*fReport, data, 0o644); err != nil {
			l.Panic().Err(err).Msg("write build report")
		}
	}

	l.Info().
		Stringer("run_id", report.RunID).
		Int("built", report.Built).
		Int("skipped", len(report.Skipped)).
		Str("out", *fOut).
		Msg("indexer finished")
}
