package controllers

import (
	"go.uber.org/dig"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewCompileController); err != nil {
		return err
	}
	if err := container.Provide(NewDoctorController); err != nil {
		return err
	}
	if err := container.Provide(NewStatsController); err != nil {
		return err
	}

	// Register the controllers aggregation
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers in the order they appear in the
// CLI help.
func NewControllers(
	compileController *CompileController,
	doctorController *DoctorController,
	statsController *StatsController,
) *[]entities.Controller {
	return &[]entities.Controller{
		compileController,
		doctorController,
		statsController,
	}
}
