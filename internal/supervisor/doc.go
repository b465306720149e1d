// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor runs the server's long-lived services under a suture v4
supervisor tree.

	RootSupervisor ("marquee")
	├── DataSupervisor ("data-layer")
	│   ├── ImportService          dataset load, run once
	│   └── CatalogMetricsService  catalog size gauges
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (start, stop, panics, backoff) are logged through
sutureslog using the slog handler from the logging package, so they share
the zerolog output of the rest of the server.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewImportService(importer, cfg.Ingest.AutoStart, catalogSvc.InvalidateCaches))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

See the services subpackage for the service wrappers.
*/
package supervisor
