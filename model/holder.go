package model

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Holder owns the loaded classifier. It is constructed once at startup; when
// the artifact cannot be read the holder stays absent and every Score call
// fails with ErrUnavailable instead of taking the process down.
type Holder struct {
	path   string
	logger *zap.Logger

	mu  sync.RWMutex
	clf Classifier
}

// NewHolder attempts the bootstrap load. Load failure is logged, not fatal.
func NewHolder(path string, logger *zap.Logger) *Holder {
	h := &Holder{path: path, logger: logger}
	if err := h.Reload(); err != nil {
		logger.Error("failed to load model, predictions will be unavailable",
			zap.String("path", path), zap.Error(err))
	} else {
		logger.Info("model loaded", zap.String("path", path))
	}
	return h
}

// Loaded reports whether a classifier is present.
func (h *Holder) Loaded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clf != nil
}

// Reload reads the artifact from disk and swaps it in. A failed reload leaves
// the previous classifier in place.
func (h *Holder) Reload() error {
	clf := &LogisticModel{}
	if err := clf.Load(h.path); err != nil {
		return err
	}
	h.mu.Lock()
	h.clf = clf
	h.mu.Unlock()
	return nil
}

// Score returns the fraud probability for one feature record.
func (h *Holder) Score(rec FeatureRecord) (float64, error) {
	h.mu.RLock()
	clf := h.clf
	h.mu.RUnlock()

	if clf == nil {
		return 0, ErrUnavailable
	}
	proba, err := clf.PredictProba(rec.Vector())
	if err != nil {
		return 0, fmt.Errorf("scoring failed: %w", err)
	}
	if len(proba) < 2 {
		return 0, fmt.Errorf("scoring failed: classifier returned %d classes, want 2", len(proba))
	}
	return proba[1], nil
}

// Watch reloads the classifier whenever the artifact file changes on disk.
// Blocks until ctx is cancelled.
func (h *Holder) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors and atomic renames replace the file node.
	if err := watcher.Add(filepath.Dir(h.path)); err != nil {
		return err
	}

	target := filepath.Clean(h.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := h.Reload(); err != nil {
				h.logger.Warn("model reload failed", zap.Error(err))
				continue
			}
			h.logger.Info("model reloaded", zap.String("path", h.path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.logger.Warn("model watcher error", zap.Error(err))
		}
	}
}
