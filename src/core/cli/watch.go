package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"test-grid/src/core/config"
	"test-grid/src/core/logger"
)

// watchDebounce coalesces editor write bursts into one reload.
const watchDebounce = 500 * time.Millisecond

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <config-file>",
		Short: "Re-resolve the node configuration whenever the config file changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	addNodeFlags(cmd)
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)
	path := args[0]

	resolveOnce(cmd, path, log)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory, not the file: editors replace files on save and
	// the watch would be lost with them
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var debounce *time.Timer
	reload := make(chan struct{}, 1)

	log.Info("watching %s", path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			log.Info("config file changed, re-resolving")
			resolveOnce(cmd, path, log)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warning("watch error: %v", err)
		case <-stop:
			log.Info("stopping watch")
			return nil
		}
	}
}

// resolveOnce loads and finalizes the configuration, logging the outcome
// instead of failing: in watch mode a broken intermediate save is expected.
func resolveOnce(cmd *cobra.Command, path string, log *logger.Logger) {
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		log.Error("config rejected: %v", err)
		return
	}
	ApplyEnvironment(cfg)
	ApplyFlagOverrides(cfg, cmd.Flags())

	if _, err := finalizeNodeConfig(cfg, log); err != nil {
		log.Error("config rejected: %v", err)
		return
	}
	log.Info("configuration ok: %d capabilities", len(cfg.Capabilities))
}
