package types

import (
	"errors"
	"slices"
)

// Config holds the table defaults read from config.yaml.
type Config struct {
	RowsPerPage        int    `json:"rows_per_page" yaml:"rows_per_page" mapstructure:"rows_per_page"`
	RowsPerPageOptions []int  `json:"rows_per_page_options" yaml:"rows_per_page_options" mapstructure:"rows_per_page_options"`
	OrderBy            string `json:"order_by" yaml:"order_by" mapstructure:"order_by"`
	RecordsFile        string `json:"records_file,omitempty" yaml:"records_file,omitempty" mapstructure:"records_file"`
	LogLevel           string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogJSON            bool   `json:"log_json" yaml:"log_json" mapstructure:"log_json"`
}

// Defaults used when config.yaml omits a key.
const (
	DefaultRowsPerPage = 5
	DefaultOrderBy     = FieldName
	DefaultLogLevel    = "info"
)

// DefaultRowsPerPageOptions are the page sizes offered by the pagination control.
var DefaultRowsPerPageOptions = []int{5, 10, 25}

// DefaultConfig returns a Config populated with the defaults.
func DefaultConfig() Config {
	return Config{
		RowsPerPage:        DefaultRowsPerPage,
		RowsPerPageOptions: slices.Clone(DefaultRowsPerPageOptions),
		OrderBy:            DefaultOrderBy,
		LogLevel:           DefaultLogLevel,
	}
}

// Config validation errors.
var (
	ErrNoPageSizeOptions  = errors.New("rows_per_page_options must not be empty")
	ErrPageSizeNotOffered = errors.New("rows per page is not one of the offered options")
)

// Validate checks that the options are positive and the default page size
// is one of them.
func (c Config) Validate() error {
	if len(c.RowsPerPageOptions) == 0 {
		return ErrNoPageSizeOptions
	}
	for _, n := range c.RowsPerPageOptions {
		if n <= 0 {
			return ErrInvalidPageSize
		}
	}
	return c.CheckRowsPerPage(c.RowsPerPage)
}

// CheckRowsPerPage returns ErrPageSizeNotOffered unless n is one of the
// configured options.
func (c Config) CheckRowsPerPage(n int) error {
	if n <= 0 {
		return ErrInvalidPageSize
	}
	if !slices.Contains(c.RowsPerPageOptions, n) {
		return ErrPageSizeNotOffered
	}
	return nil
}
