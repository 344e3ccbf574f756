package config

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// reloadDebounce coalesces the burst of events one save produces.
// Editors that write via rename emit several within a few ms.
const reloadDebounce = 150 * time.Millisecond

// Watcher reloads the config file when it changes on disk. The parent
// directory is watched rather than the file itself, so atomic replace
// (write to temp, rename over) keeps working after the original inode
// is gone.
type Watcher struct {
	path     string
	onReload func(*Config)
	watcher  *fsnotify.Watcher

	mu          sync.Mutex
	reloadTimer *time.Timer
	lastHash    string
}

// NewWatcher creates a watcher for the config file at path. onReload
// runs after every successful reload with the fresh config.
func NewWatcher(path string, onReload func(*Config)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		path:     path,
		onReload: onReload,
		watcher:  watcher,
	}, nil
}

// Start begins watching. It returns once the watch is registered; the
// event loop runs until ctx ends or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		log.Errorf("failed to watch config directory %s: %v", dir, err)

		return err
	}
	log.Debugf("watching config file: %s", w.path)

	go w.processEvents(ctx)

	return nil
}

// Stop ends the watch and releases the timer.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.reloadTimer != nil {
		w.reloadTimer.Stop()
		w.reloadTimer = nil
	}
	w.mu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("config watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Only the config file itself matters; the directory watch also
	// reports siblings and editor temp files.
	reloadOps := fsnotify.Write | fsnotify.Create | fsnotify.Rename
	if normalizePath(event.Name) != normalizePath(w.path) || event.Op&reloadOps == 0 {
		return
	}

	log.Debugf("config file event: %s %s", event.Op.String(), event.Name)
	w.scheduleReload()
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.reloadTimer != nil {
		w.reloadTimer.Stop()
	}
	w.reloadTimer = time.AfterFunc(reloadDebounce, func() {
		w.mu.Lock()
		w.reloadTimer = nil
		w.mu.Unlock()
		w.reloadIfChanged()
	})
}

// reloadIfChanged loads the file unless its content hash matches the
// last successful load. A failed load keeps the previous config; the
// watch stays active for the next save.
func (w *Watcher) reloadIfChanged() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		log.Errorf("failed to read config file for hash check: %v", err)

		return
	}
	if len(data) == 0 {
		log.Debug("ignoring empty config file write event")

		return
	}

	sum := sha256.Sum256(data)
	newHash := hex.EncodeToString(sum[:])

	w.mu.Lock()
	lastHash := w.lastHash
	w.mu.Unlock()

	if lastHash != "" && lastHash == newHash {
		log.Debug("config file content unchanged, skipping reload")

		return
	}

	cfg, err := Load(w.path)
	if err != nil {
		log.Errorf("failed to reload config: %v", err)

		return
	}

	w.mu.Lock()
	w.lastHash = newHash
	w.mu.Unlock()

	log.Infof("config file changed, reloaded: %s", w.path)
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

// normalizePath makes event paths comparable to the configured one.
func normalizePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}

	cleaned := filepath.Clean(trimmed)
	if runtime.GOOS == "windows" {
		cleaned = strings.TrimPrefix(cleaned, `\\?\`)
		cleaned = strings.ToLower(cleaned)
	}

	return cleaned
}
