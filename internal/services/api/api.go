// Package api provides the HTTP API for the application
package api

import (
	"crimemap/internal/core/version"
	"crimemap/internal/platform/config"
	"crimemap/internal/platform/logger"
	phttp "crimemap/internal/platform/net/http"
	"crimemap/internal/services/dataset"

	"crimemap/internal/modkit"
	"crimemap/internal/modkit/httpkit"
	"crimemap/internal/modkit/swaggerkit"

	dashmod "crimemap/internal/services/api/dashboard/module"
	metamod "crimemap/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	// Config is the http scope (CORE_API_*), read for the middleware stack
	Config config.Conf
	// DataConfig is the dataset scope (CRIMEMAP_*), handed to modules
	DataConfig     config.Conf
	Data           dataset.Provider
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) []string {
	// shared deps for modules
	deps := modkit.Deps{
		Log:  opt.Logger,
		Cfg:  opt.DataConfig,
		Data: opt.Data,
	}

	mods := []modkit.Module{
		metamod.New(deps, modkit.WithSwagger(opt.EnableSwagger)),
		dashmod.New(deps, modkit.WithSwagger(opt.EnableSwagger)),
	}

	// Swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger, swaggerkit.Info{
		Title:    "crimemap API",
		Version:  version.Info(metamod.ServiceName).Version,
		BasePath: "/api/v1",
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	var names []string
	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackFromConfig(opt.Config)), func(api httpkit.Router) {
		names = modkit.MountAll(api, mods...)
	})

	deps.Logger("api").Info().Strs("modules", names).Bool("swagger", opt.EnableSwagger).Msg("api mounted")
	return names
}
