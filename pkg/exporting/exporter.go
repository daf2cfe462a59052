package exporting

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "sysinfo/pkg/errors"
	"sysinfo/pkg/metrics"
)

// Export serializes the record per the path's extension and writes it,
// overwriting an existing file. An unrecognized extension fails with
// UnsupportedFormatError before anything touches the filesystem; a write
// failure surfaces as ExportError with the OS-reported reason.
func Export(r *metrics.Record, path string) error {
	f, ok := GetByPath(path)
	if !ok {
		return apperrors.UnsupportedFormatError{
			Ext:       filepath.Ext(path),
			Supported: SupportedExtensions(),
		}
	}

	data, err := f.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", f.Name(), err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.ExportError{Path: path, Cause: err}
	}
	return nil
}
