// Package exporting serializes records and writes them to files.
package exporting

import (
	"path/filepath"
	"sort"
	"strings"

	"sysinfo/pkg/metrics"
)

// Format defines a serialization format for a single record.
type Format interface {
	Name() string
	Extensions() []string
	Marshal(r *metrics.Record) ([]byte, error)
}

var (
	registry    = make(map[string]Format)
	extRegistry = make(map[string]Format)
)

// Register adds a format to the registry.
func Register(f Format) {
	registry[strings.ToLower(f.Name())] = f
	for _, ext := range f.Extensions() {
		extRegistry[strings.ToLower(ext)] = f
	}
}

// Get returns a format by name.
func Get(name string) (Format, bool) {
	f, ok := registry[strings.ToLower(name)]
	return f, ok
}

// GetByExtension returns a format by file extension.
func GetByExtension(ext string) (Format, bool) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	f, ok := extRegistry[ext]
	return f, ok
}

// GetByPath returns a format based on the file's extension.
func GetByPath(path string) (Format, bool) {
	return GetByExtension(filepath.Ext(path))
}

// SupportedExtensions lists the registered extensions, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extRegistry))
	for ext := range extRegistry {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
