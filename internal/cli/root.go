// Package cli implements the adboard command-line interface.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/adboard/internal/logger"
	"github.com/mesh-intelligence/adboard/internal/paths"
	"github.com/mesh-intelligence/adboard/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir   string
	recordsFile string
	jsonMode    bool
	logLevel    string
	logJSON     bool
}

var flags rootFlags

// cfg is the configuration loaded by the root command before any subcommand runs.
var cfg types.Config

// NewRootCmd creates the top-level "adboard" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "adboard",
		Short: "Browse ad unit configurations",
		Long: "adboard lists the AdMob ad unit configurations of the admin dashboard\n" +
			"as a sortable, filterable, paginated table.",
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.recordsFile, "records", "", "JSONL file of ad configurations (default: built-in sample)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	root.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "write logs as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newNavCmd())
	root.AddCommand(newCreateCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newDeleteCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// setup resolves the config directory, loads config.yaml, and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return systemError(err)
	}

	loaded, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = flags.logLevel
	}
	logJSON := cfg.LogJSON
	if cmd.Flags().Changed("log-json") {
		logJSON = flags.logJSON
	}
	logger.Setup(level, logJSON)
	logger.Default().Debug("configuration loaded", "config_dir", configDir)
	return nil
}

// sysError marks failures of the environment rather than of user input.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemError(err error) error {
	if err == nil {
		return nil
	}
	return &sysError{err: err}
}

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
