package romfs

import (
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher marks the browser tree stale when files under the mount roots
// change, so a freshly copied ROM shows up without leaving the selection
// screen. It only flips a flag; the UI thread decides when to rescan.
type Watcher struct {
	fs    *fsnotify.Watcher
	dirty atomic.Bool
	done  chan struct{}
}

// NewWatcher watches the mount roots that exist. Roots that cannot be watched
// are logged and skipped; a watcher over zero roots is still valid and simply
// never reports staleness.
func NewWatcher(mountRoots []string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fs: fs, done: make(chan struct{})}
	for _, root := range mountRoots {
		if err := fs.Add(root); err != nil {
			logrus.WithError(err).WithField("dir", root).Warn("Not watching mount root")
		}
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) != 0 {
				w.dirty.Store(true)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("Mount watcher error")
		case <-w.done:
			return
		}
	}
}

// Stale reports and clears the dirty flag in one step.
func (w *Watcher) Stale() bool {
	return w.dirty.Swap(false)
}

// Close stops the watch loop and releases the inotify handle.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
