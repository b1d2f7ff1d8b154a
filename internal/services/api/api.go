// Package api provides the HTTP API for the application
package api

import (
	"hourglass/internal/platform/config"
	"hourglass/internal/platform/logger"
	phttp "hourglass/internal/platform/net/http"

	"hourglass/internal/modkit"
	"hourglass/internal/modkit/httpkit"
	"hourglass/internal/modkit/module"
	"hourglass/internal/modkit/swaggerkit"

	metamod "hourglass/internal/services/api/meta/module"
	temporalmod "hourglass/internal/services/api/temporal/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		temporalmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler live at the root, outside the version prefix
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
