package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

// loadSettings resolves the effective settings for a CLI invocation: the
// --settings flag when given, else the first discovered settings file, else
// the built-in defaults.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	path, _ := cmd.Flags().GetString("settings")

	if path == "" {
		found, findErr := entities.FindSettingsFile()
		if findErr != nil {
			logger.Debugf("no settings file found, using the defaults")
			return entities.DefaultSettings(), nil
		}
		path = found
	}

	logger.Infof("Using settings file: %s", path)
	return entities.NewSettings(path)
}
