package wobble

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatchModule watches a directory for WGSL edits and reloads matching
// file-backed materials. The watcher goroutine only feeds a channel; the
// asset server is touched exclusively from the system, on the main thread.
type ShaderWatchModule struct {
	Dir string
}

type shaderWatchState struct {
	watcher *fsnotify.Watcher
	changed chan string
}

func (mod ShaderWatchModule) Install(app *App, cmd *Commands) {
	if mod.Dir == "" {
		app.Logger().Warnf("shader watch installed without a directory; skipping")
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		app.Logger().Errorf("shader watch unavailable: %v", err)
		return
	}
	if err := watcher.Add(mod.Dir); err != nil {
		app.Logger().Errorf("cannot watch %s: %v", mod.Dir, err)
		_ = watcher.Close()
		return
	}

	state := &shaderWatchState{
		watcher: watcher,
		changed: make(chan string, 16),
	}
	go watchLoop(watcher, state.changed)

	cmd.AddResources(state)
	app.UseSystem(
		System(shaderReloadSystem).
			InStage(PreUpdate),
	)
	app.Logger().Infof("watching %s for shader changes", mod.Dir)
}

func watchLoop(watcher *fsnotify.Watcher, changed chan<- string) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if strings.ToLower(filepath.Ext(event.Name)) != ".wgsl" {
				continue
			}
			select {
			case changed <- event.Name:
			default:
				// channel full, a pending reload already covers this file
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func shaderReloadSystem(state *shaderWatchState, assets *AssetServer, log *Log) {
	for {
		select {
		case path := <-state.changed:
			n, err := assets.ReloadMaterialsFromFile(path)
			if err != nil {
				log.Errorf("shader reload failed: %v", err)
				continue
			}
			if n > 0 {
				log.Infof("reloaded %d material(s) from %s", n, path)
			}
		default:
			return
		}
	}
}
