package main

import (
	"go.uber.org/dig"

	"github.com/casper-network/nctl-bootstrap/internal"
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// injectApp builds the DI container for one CLI run and resolves the App.
// The streams are provided first so every component writes to the writers
// the entry point was handed.
func injectApp(streams *entities.Streams) *internal.App {
	container := dig.New()

	if err := container.Provide(func() *entities.Streams {
		return streams
	}); err != nil {
		panic(err)
	}

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get the App
	var app *internal.App
	if err := container.Invoke(func(resolved *internal.App) {
		app = resolved
	}); err != nil {
		panic(err)
	}

	return app
}
