package watcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-portfolio-grid/internal/core/model"
	"github.com/penwyp/go-portfolio-grid/internal/data/loader"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

// FileWatcher reports changes to a set of project files. It watches the
// parent directories so that editors which save by renaming a temp file over
// the original are still noticed. In open directories any file the loader
// supports is reported, including ones created after the watch started.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]struct{}
	open    map[string]struct{}
	events  chan model.FileEvent
	done    chan struct{}
}

// NewFileWatcher starts watching paths and the open directories dirs.
func NewFileWatcher(paths []string, dirs ...string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		files:   make(map[string]struct{}, len(paths)),
		open:    make(map[string]struct{}, len(dirs)),
		events:  make(chan model.FileEvent, 100),
		done:    make(chan struct{}),
	}

	watched := make(map[string]struct{})
	for _, p := range paths {
		abs := absPath(p)
		fw.files[abs] = struct{}{}
		watched[filepath.Dir(abs)] = struct{}{}
	}
	for _, d := range dirs {
		abs := absPath(d)
		fw.open[abs] = struct{}{}
		watched[abs] = struct{}{}
	}

	for dir := range watched {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
		util.LogDebugf("Watching directory %s", dir)
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.done)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.isWatched(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}

			select {
			case fw.events <- model.FileEvent{Path: event.Name, Operation: event.Op.String()}:
			default:
				// A reload is already pending; dropping duplicates is fine.
				util.LogDebugf("Dropped file event for %s", event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("File monitoring error: " + err.Error())
		}
	}
}

func (fw *FileWatcher) isWatched(name string) bool {
	abs := absPath(name)
	if _, ok := fw.files[abs]; ok {
		return true
	}
	_, ok := fw.open[filepath.Dir(abs)]
	return ok && loader.Supported(abs)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Events returns the channel of relevant file events.
func (fw *FileWatcher) Events() <-chan model.FileEvent {
	return fw.events
}

// Close stops watching.
func (fw *FileWatcher) Close() error {
	err := fw.watcher.Close()
	<-fw.done
	return err
}
