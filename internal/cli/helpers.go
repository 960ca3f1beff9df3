package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/adboard/internal/board"
	"github.com/mesh-intelligence/adboard/internal/catalog"
	"github.com/mesh-intelligence/adboard/internal/logger"
	"github.com/mesh-intelligence/adboard/internal/paths"
	"github.com/mesh-intelligence/adboard/pkg/types"
)

// openBoard resolves the records source, loads the catalog, and returns a
// Board over it. Load failures are system errors.
func openBoard() (*board.Board, error) {
	path, err := paths.ResolveRecordsFile(flags.recordsFile, cfg.RecordsFile)
	if err != nil {
		return nil, systemError(fmt.Errorf("resolve records file: %w", err))
	}

	log := logger.Default()
	var src catalog.Source = catalog.Sample()
	if path != "" {
		src = catalog.NewFile(path, log)
	}

	c, err := catalog.Load(src)
	if err != nil {
		return nil, systemError(err)
	}
	log.Debug("catalog loaded", "source", src.Name(), "records", c.Len())
	return board.New(c, log), nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// isNotFound returns true if the error wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

// isNotImplemented returns true if the error wraps ErrNotImplemented.
func isNotImplemented(err error) bool {
	return errors.Is(err, types.ErrNotImplemented)
}
