// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

/*
Package api provides the HTTP surface of the planet catalog.

# Routes

	GET    /planets              list every planet
	POST   /planets              create a planet
	GET    /planets/name/{name}  get by name
	PUT    /planets/name/{name}  update by name
	DELETE /planets/name/{name}  delete by name
	GET    /planets/id/{id}      get by id
	PUT    /planets/id/{id}      update by id
	DELETE /planets/id/{id}      delete by id
	GET    /health, /health/live, /health/ready
	GET    /metrics

/planets/ is accepted as /planets.

# Response Envelope

Single-planet endpoints answer with {"result": ...}, where result is either
the planet or one of a fixed set of outcome strings:

	{"result": {"id": "...", "name": "Tatooine", "climate": "arid", "terrain": "desert", "n_appearances": 5}}
	{"result": "already exists"}        200, create with a taken name
	{"result": "not found"}             404
	{"result": "Tatooine has been deleted."}

Invalid requests and server failures also carry an "error" object with a
machine-readable code. Store errors never reach the client; they are logged
and reported as {"result": "internal error"} with status 500.

# Middleware

Every route runs behind request ID tagging, real-IP extraction, panic
recovery, Prometheus instrumentation and CORS. Planet routes are also rate
limited per client IP with go-chi/httprate.
*/
package api
