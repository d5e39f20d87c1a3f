// @title         crimemap API
// @version       0.1.0
// @description   Read only endpoints for the district crime dashboard
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"crimemap/internal/platform/config"
	"crimemap/internal/platform/logger"
	phttp "crimemap/internal/platform/net/http"
	"crimemap/internal/services/dataset"

	"crimemap/internal/services/api"
)

func main() {
	// a missing .env is fine, the environment wins either way
	_ = godotenv.Load(".env")

	// service-scoped config for HTTP (CORE_API_*) and data (CRIMEMAP_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	dataCfg := root.Prefix("CRIMEMAP_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	locs := dataset.LocationsFromConfig(dataCfg)
	data := dataset.New(locs.Sources(), dataset.WithSchema(dataset.SchemaFromConfig(dataCfg)))

	// refuse to start on unreadable sources
	snap, err := data.Snapshot(ctx)
	if err != nil {
		l.Fatal().Err(err).
			Str("historical", locs.Historical).
			Str("recent", locs.Recent).
			Str("boundaries", locs.Boundaries).
			Msg("dataset load failed")
	}
	l.Info().Str("snapshot_id", snap.ID).Int("rows", snap.Model.Table.Len()).Msg("dataset ready")

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			DataConfig:     dataCfg,
			Data:           data,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
