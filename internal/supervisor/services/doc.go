// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package services adapts server components to suture.Service.

HTTPServerService translates http.Server's blocking ListenAndServe into a
context-aware Serve with graceful shutdown.

ImportService runs the dataset import once. Success invalidates the
catalog caches through its completion callback; failure is logged and
returns suture.ErrDoNotRestart because a partial load cannot be replayed
into the same repository.

CatalogMetricsService refreshes the catalog size gauges on an interval.
*/
package services
