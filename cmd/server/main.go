// Package main implements the entry point for the WTWR API server, the
// REST backend of the What To Wear clothing-recommendation application.
package main

import (
	"context"
	"log"
)

// main is the entry point for the wtwr-api server. It initializes
// configuration, logging, the database connection and the dependency graph,
// then runs the HTTP server until shutdown.
func main() {
	ctx := context.Background()

	app, err := newApplication(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
