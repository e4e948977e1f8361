// Package file provides a TOML-backed Translator. Translation files
// live in a directory as <language>.toml and are hot-reloaded when
// they change on disk, so running TUIs pick up edits without a
// restart.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
	"github.com/custodia-labs/unisearch/internal/logger"
)

// Ensure Translator implements the interface.
var _ driven.Translator = (*Translator)(nil)

// Translator resolves user-facing strings from a TOML file, keyed by
// dotted paths such as "search.placeholder".
type Translator struct {
	mu      sync.RWMutex
	entries map[string]string

	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewTranslator loads <language>.toml from dir and watches it for
// changes. A missing file is not an error; every lookup then returns
// its fallback.
func NewTranslator(dir, language string) (*Translator, error) {
	t := &Translator{
		entries: make(map[string]string),
		path:    filepath.Join(dir, language+".toml"),
		done:    make(chan struct{}),
	}

	if err := t.load(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating translation watcher: %w", err)
	}
	// The directory is watched, not the file: editors replace files on
	// save, which would drop a file-level watch.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	t.watcher = watcher
	go t.watch()

	return t, nil
}

// Static returns a translator over a fixed set of entries, with no
// file backing. Used for built-in strings and in tests.
func Static(entries map[string]string) *Translator {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Translator{entries: copied}
}

// T returns the translation for key, or fallback when the key is
// missing.
func (t *Translator) T(key, fallback string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if v, ok := t.entries[key]; ok {
		return v
	}
	return fallback
}

// Close stops watching for file changes.
func (t *Translator) Close() error {
	if t.watcher == nil {
		return nil
	}
	close(t.done)
	return t.watcher.Close()
}

// load reads the translation file into memory.
func (t *Translator) load() error {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading translations: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing translations: %w", err)
	}

	entries := make(map[string]string)
	flattenStrings(raw, "", entries)

	t.mu.Lock()
	t.entries = entries
	t.mu.Unlock()
	return nil
}

// watch reloads the translation file whenever it changes.
func (t *Translator) watch() {
	for {
		select {
		case <-t.done:
			return
		case event, ok := <-t.watcher.Events:
			if !ok {
				return
			}
			if event.Name != t.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := t.load(); err != nil {
				logger.Warn("reloading translations: %v", err)
			} else {
				logger.Debug("Reloaded translations from %s", t.path)
			}
		case err, ok := <-t.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("translation watcher: %v", err)
		}
	}
}

// flattenStrings collects string leaves of nested TOML tables into
// dotted keys.
func flattenStrings(m map[string]any, prefix string, out map[string]string) {
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[fullKey] = v
		case map[string]any:
			flattenStrings(v, fullKey, out)
		}
	}
}
