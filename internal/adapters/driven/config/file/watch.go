package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/salmonumbrella/Contactbook/internal/logger"
)

// Watch reloads the store whenever the config file changes on disk and
// then invokes onReload, so callers can push the fresh values into the
// components that captured them at startup. It blocks until the context
// is cancelled, so long-running callers (the MCP server) run it in a
// goroutine. Short-lived CLI invocations read the file once and never
// need it.
func (s *ConfigStore) Watch(ctx context.Context, onReload func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors replace the file rather than writing
	// it in place, which drops a watch on the file itself.
	if err := watcher.Add(s.configDir()); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != s.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := s.Load(); err != nil {
				logger.Warn("Config reload failed: %v", err)
				continue
			}
			logger.Info("Config reloaded from %s", s.filePath)
			if onReload != nil {
				onReload()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watch error: %v", err)
		}
	}
}

func (s *ConfigStore) configDir() string {
	return filepath.Dir(s.filePath)
}
