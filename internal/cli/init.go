package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/adboard/internal/logger"
	"github.com/mesh-intelligence/adboard/internal/paths"
	"github.com/mesh-intelligence/adboard/pkg/types"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Create the configuration directory and a config.yaml with default table settings.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return systemError(err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return systemError(fmt.Errorf("create config directory: %w", err))
	}

	path := filepath.Join(configDir, configFileExt)
	written, err := writeConfigIfMissing(path, flags.recordsFile)
	if err != nil {
		return systemError(fmt.Errorf("write config: %w", err))
	}

	if written {
		logger.Default().Info("config file created", "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at %s\n", path)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path, recordsFile string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	c := types.DefaultConfig()
	c.RecordsFile = recordsFile

	data, err := yaml.Marshal(&c)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}
