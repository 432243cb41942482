// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

/*
Command server runs the planet catalog HTTP service.

Startup order:

 1. Configuration: .env files, then config.yaml, then environment (koanf v2)
 2. Logging: zerolog with the configured level and format
 3. Store: MongoDB or embedded BadgerDB, chosen by DATABASE_DRIVER
 4. Lookup: SWAPI client with timeout, rate limiter and circuit breaker
 5. Supervisor tree: store monitor (data layer) and HTTP server (api layer)

# Configuration

Common environment variables:

	DATABASE_DRIVER   mongo (default) or badger
	MONGO_URI         mongodb://127.0.0.1:27017
	MONGO_DBNAME      starwars_planets
	MONGO_COLLECTION  starwars_planets
	BADGER_PATH       /data/planetary
	SWAPI_URL         https://swapi.dev/api/planets/
	HTTP_PORT         5000
	LOG_LEVEL         info
	LOG_FORMAT        json or console

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and gives in-flight requests up to HTTP_TIMEOUT to
finish, then the store is closed.

# Example Usage

Against a local MongoDB:

	export MONGO_URI=mongodb://localhost:27017
	./server

Self-contained, with an embedded store:

	export DATABASE_DRIVER=badger BADGER_PATH=./data
	./server
*/
package main
