package repositories

import (
	"go.uber.org/dig"

	"github.com/casper-network/nctl-bootstrap/internal/infrastructure/repositories/execrunner"
	"github.com/casper-network/nctl-bootstrap/internal/infrastructure/repositories/gogit"
	"github.com/casper-network/nctl-bootstrap/internal/infrastructure/repositories/hclmanifest"
	"github.com/casper-network/nctl-bootstrap/internal/infrastructure/repositories/shellenv"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(gogit.NewClonerRepository); err != nil {
		return err
	}
	if err := container.Provide(shellenv.NewEnvironmentRepository); err != nil {
		return err
	}
	if err := container.Provide(execrunner.NewRunnerRepository); err != nil {
		return err
	}
	if err := container.Provide(hclmanifest.NewManifestRepository); err != nil {
		return err
	}

	return nil
}
