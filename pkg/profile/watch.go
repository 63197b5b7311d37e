package profile

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/KJ-GM/responsive-csx/pkg/watcher"
)

// Reload is delivered on every catalog file change: either a freshly
// parsed catalog or the error that made it unloadable.
type Reload struct {
	Catalog Catalog
	Err     error
}

// Watch reloads the catalog file whenever it changes and delivers the
// result to fn, debounced so editor save storms collapse into one reload.
// The returned stop function cancels watching; fn is never invoked after
// stop returns.
//
// The parent directory is watched rather than the file itself, so
// rename-and-replace saves keep working.
func Watch(path string, debounce time.Duration, log *slog.Logger, fn func(Reload)) (stop func(), err error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create catalog watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	var bus watcher.Broadcast[Reload]
	unlisten := bus.Listen(fn)
	deb := watcher.NewDebouncer(debounce)
	base := filepath.Base(path)

	go func() {
		for {
			select {
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if !ev.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
					continue
				}
				log.Debug("catalog changed", "op", ev.Op.String(), "path", ev.Name)
				deb.Trigger(func() {
					cat, err := LoadFile(path)
					bus.Send(Reload{Catalog: cat, Err: err})
				})
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				log.Warn("catalog watcher error", "err", err)
			}
		}
	}()

	return func() {
		fsw.Close()
		deb.Cancel()
		unlisten()
	}, nil
}
