package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrNoLoader is returned when no loader handles a file extension.
var ErrNoLoader = errors.New("scene: no loader for file type")

// Loader decodes a model from r.
type Loader func(r io.Reader) (*Model, error)

// Registry state - protected by mutex for thread-safe access.
var (
	loadersMu sync.RWMutex
	loaders   = make(map[string]Loader)
)

// RegisterLoader registers a loader for a file extension such as ".ply".
// Extensions are matched case-insensitively.
//
// RegisterLoader panics if loader is nil or the extension is already
// registered.
func RegisterLoader(ext string, loader Loader) {
	loadersMu.Lock()
	defer loadersMu.Unlock()

	ext = normalizeExt(ext)
	if loader == nil {
		panic("scene: RegisterLoader loader is nil")
	}
	if _, dup := loaders[ext]; dup {
		panic("scene: RegisterLoader called twice for " + ext)
	}
	loaders[ext] = loader
}

// UnregisterLoader removes the loader for ext.
// This is primarily useful for testing to clean up between tests.
func UnregisterLoader(ext string) {
	loadersMu.Lock()
	defer loadersMu.Unlock()
	delete(loaders, normalizeExt(ext))
}

// Loaders returns the registered extensions in sorted order.
func Loaders() []string {
	loadersMu.RLock()
	defer loadersMu.RUnlock()

	exts := make([]string, 0, len(loaders))
	for ext := range loaders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load decodes the model file at path with the loader for its extension.
// The model is named after the file's base name without extension.
func Load(path string) (*Model, error) {
	ext := normalizeExt(filepath.Ext(path))

	loadersMu.RLock()
	loader, ok := loaders[ext]
	loadersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoLoader, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open model: %w", err)
	}
	defer f.Close()

	m, err := loader(f)
	if err != nil {
		return nil, fmt.Errorf("scene: decode %s: %w", filepath.Base(path), err)
	}
	if m == nil {
		return nil, fmt.Errorf("scene: decode %s: loader returned no model", filepath.Base(path))
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
