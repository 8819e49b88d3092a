package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/midbel/chartkit/internal/logging"
	"github.com/spf13/cobra"
)

func (a *App) newWatchCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "watch <file>...",
		Short: "Render the documents again each time they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer watcher.Close()

			files := make(map[string]struct{})
			dirs := make(map[string]struct{})
			for _, arg := range args {
				file, err := filepath.Abs(arg)
				if err != nil {
					return err
				}
				files[file] = struct{}{}
				dirs[filepath.Dir(file)] = struct{}{}
				// a broken document is logged but does not stop watching
				_, _ = renderFile(ctx, file, opts)
			}
			for d := range dirs {
				if err := watcher.Add(d); err != nil {
					return fmt.Errorf("failed to watch %s: %w", d, err)
				}
			}
			for {
				select {
				case <-ctx.Done():
					return nil
				case e, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if _, ok := files[filepath.Clean(e.Name)]; !ok {
						continue
					}
					if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
						continue
					}
					logging.Debug().Add(logging.File(e.Name), logging.Str("op", e.Op.String())).Msg("document changed")
					if n, err := renderFile(ctx, e.Name, opts); err == nil {
						fmt.Fprintf(a.stdout, "%s: %d chart(s) written to %s\n", e.Name, n, opts.Output)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logging.Warn().Add(logging.ErrorField(err)).Msg("watcher error")
				}
			}
		},
	}
	registerRenderFlags(cmd, &opts)
	return cmd
}
