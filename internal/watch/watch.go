// Package watch reports content changes of a fixed set of files.
package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/zeebo/xxh3"
)

// Watcher tracks files by the hash of their content, so that touching a
// file or rewriting it with the same bytes is not reported.
type Watcher struct {
	w      *fsnotify.Watcher
	log    *slog.Logger
	files  map[string]bool
	hashes map[string]uint64
}

// New starts watching paths. The directories holding them are watched
// rather than the files, since editors often replace a file by renaming a
// new one over it.
func New(paths []string, log *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		w:      fw,
		log:    log,
		files:  make(map[string]bool),
		hashes: make(map[string]uint64),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		if _, err := w.Changed(abs); err != nil {
			fw.Close()
			return nil, err
		}
		if dir := filepath.Dir(abs); !dirs[dir] {
			dirs[dir] = true
			if err := fw.Add(dir); err != nil {
				fw.Close()
				return nil, err
			}
		}
	}
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}

// Run calls onChange with the path of every watched file whose content
// changed, until ctx is done or onChange fails.
func (w *Watcher) Run(ctx context.Context, onChange func(path string) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			path, err := filepath.Abs(ev.Name)
			if err != nil || !w.files[path] {
				continue
			}
			changed, err := w.Changed(path)
			if err != nil {
				// Removed in the middle of a rename, the create event follows.
				w.log.Debug("skipping unreadable file", "path", path, "err", err)
				continue
			}
			if !changed {
				continue
			}
			w.log.Debug("file changed", "path", path, "op", ev.Op.String())
			if err := onChange(path); err != nil {
				return err
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

// Changed hashes the content of path and returns true if it differs from
// the last hash recorded for it.
func (w *Watcher) Changed(path string) (bool, error) {
	sum, err := Hash(path)
	if err != nil {
		return false, err
	}
	prev, seen := w.hashes[path]
	w.hashes[path] = sum
	return !seen || prev != sum, nil
}

// Hash returns the xxh3 hash of the file content.
func Hash(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := xxh3.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
