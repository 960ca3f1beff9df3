package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/adboard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyRowsPerPage        = "rows_per_page"
	cfgKeyRowsPerPageOptions = "rows_per_page_options"
	cfgKeyOrderBy            = "order_by"
	cfgKeyRecordsFile        = "records_file"
	cfgKeyLogLevel           = "log_level"
	cfgKeyLogJSON            = "log_json"
)

// loadConfig reads config.yaml from configDir using Viper and applies
// defaults for missing keys. A missing config.yaml is not an error.
func loadConfig(configDir string) (types.Config, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyRowsPerPage, def.RowsPerPage)
	v.SetDefault(cfgKeyRowsPerPageOptions, def.RowsPerPageOptions)
	v.SetDefault(cfgKeyOrderBy, def.OrderBy)
	v.SetDefault(cfgKeyRecordsFile, "")
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogJSON, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, systemError(fmt.Errorf("read config: %w", err))
		}
	}

	var c types.Config
	if err := v.Unmarshal(&c); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
