package internal

import (
	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// App aggregates the CLI controllers resolved from the DI container.
type App struct {
	controllers []entities.Controller
}

// NewApp creates the application context from the aggregated controllers.
func NewApp(controllers *[]entities.Controller) *App {
	return &App{controllers: *controllers}
}

// GetControllers returns every registered controller.
func (it *App) GetControllers() []entities.Controller {
	return it.controllers
}
