// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

// Package testinfra provides test infrastructure shared by package tests.
//
// # MongoDB Container
//
// Built with the integration tag, MongoContainer starts a real MongoDB with
// testcontainers-go so the mongostore backend is tested against the server
// it runs on in production:
//
//	func TestMongoStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mongo)
//
//	    store, err := mongostore.Open(ctx, mongo.URI, "test", "planets", 10*time.Second)
//	    // ...
//	}
//
// Run them with:
//
//	go test -tags integration ./...
//
// # Mock SWAPI Server
//
// MockSWAPIServer answers planet searches from a fixed catalog and records
// every search term it receives. It needs no Docker and is available to
// ordinary unit tests:
//
//	swapi := testinfra.NewMockSWAPIServer(t)
//	swapi.AddPlanet("Tatooine", 5)
//	client, _ := lookup.NewClient(&config.LookupConfig{BaseURL: swapi.URL(), ...})
package testinfra
