package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewCompileCommand); err != nil {
		return err
	}
	if err := container.Provide(NewDoctorCommand); err != nil {
		return err
	}
	if err := container.Provide(NewStatsCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *CompileCommand) Compile {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *DoctorCommand) Doctor {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *StatsCommand) Stats {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
