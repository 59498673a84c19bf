package utils

import (
	"fmt"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"path"
	"time"
)

const WatcherDebounce = 2 * time.Second

func watcherLoop(filePath string, watcher *fsnotify.Watcher, f func()) {
	var lastEvent time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			log.WithFields(log.Fields{
				"name": event.Name,
				"op":   event.Op,
			}).Debug("File watcher")
			if path.Clean(event.Name) == filePath &&
				event.Op&(fsnotify.Write|fsnotify.Create) != 0 &&
				time.Since(lastEvent) >= WatcherDebounce {
				lastEvent = time.Now()
				f()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.WithField("error", fmt.Sprint(err)).Error("File watcher")
		}
	}
}

// NewFileWatcher calls f when filePath is written or created. Close the
// returned watcher to stop.
func NewFileWatcher(filePath string, f func()) (*fsnotify.Watcher, error) {
	var watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	filePath = path.Clean(filePath)
	go watcherLoop(filePath, watcher, f)
	if err = watcher.Add(path.Dir(filePath)); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return watcher, nil
}
