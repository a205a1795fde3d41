package build

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// settle is how long Watch waits after the last change before rebuilding.
// Editors often write a file in several steps.
const settle = 100 * time.Millisecond

// Watch calls fn once, then again each time the file at path is written,
// until ctx is done. Errors from fn are logged and do not stop the
// watch. The containing directory is watched, so editors that replace
// the file by renaming another one over it are seen too.
func Watch(ctx context.Context, path string, logger *log.Logger, fn func() error) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "resolve watched path")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(path))
	}

	rebuild := func() {
		if err := fn(); err != nil {
			logger.Print(err)
		}
	}
	rebuild()
	logger.Printf("watching %s", path)

	timer := time.NewTimer(settle)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "watch")
		case <-timer.C:
			logger.Printf("%s changed", filepath.Base(path))
			rebuild()
		}
	}
}
