// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

/*
Package services provides suture.Service wrappers for the planet service.

Each wrapper implements suture's Serve(ctx) error: it runs until ctx is
canceled, returns ctx.Err() on a clean stop and any other error to request
a restart. Each also implements fmt.Stringer so supervisor events name it.

HTTPServerService translates http.Server's ListenAndServe/Shutdown pair
into Serve, shutting down gracefully within a timeout.

StoreMonitorService pings the planet store on an interval, exports the
result as the store_up gauge and logs when the store goes down or comes
back.
*/
package services
