// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

/*
Package supervisor runs the long-lived parts of the planet service under a
suture v4 supervisor tree.

	RootSupervisor ("planetary")
	├── DataSupervisor ("data-layer")
	│   └── StoreMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed service is restarted with backoff; a failure in one layer does not
restart the other. Canceling the context passed to Serve shuts the tree down,
giving each service ShutdownTimeout to return.

Supervisor events are logged through sutureslog, using the slog bridge from
the logging package:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewStoreMonitorService(store, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
