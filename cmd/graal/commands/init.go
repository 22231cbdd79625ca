package commands

import (
	"fmt"

	"github.com/aetheriaxai/graal/pkg/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample graal configuration file.

By default, the configuration file is created at $XDG_CONFIG_HOME/graal/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  graal init

  # Initialize with custom path
  graal init --config /etc/graal/config.yaml

  # Force overwrite existing config
  graal init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	var configPath string
	var err error

	if configFile != "" {
		// Use custom path
		err = config.InitConfigToPath(configFile, initForce)
		configPath = configFile
	} else {
		// Use default path
		configPath, err = config.InitConfig(initForce)
	}

	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	printSuccessWithInfo(
		fmt.Sprintf("Configuration file created at: %s", configPath),
		"",
		"Next steps:",
		"  1. Edit the configuration file to customize your setup",
		"  2. Browse the catalog with: graal inspect objects",
		"  3. Read an object with: graal query go.runtime:type=Runtime",
		"",
		"All settings can be overridden with environment variables:",
		"  GRAAL_LOGGING_LEVEL=DEBUG graal inspect objects",
	)

	return nil
}
