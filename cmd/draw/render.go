package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/midbel/chartkit/decode"
	"github.com/midbel/chartkit/internal/logging"
	"github.com/midbel/chartkit/paint"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type renderOptions struct {
	Output   string
	Strict   bool
	Parallel int
}

func (a *App) newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render <file>...",
		Short: "Render every chart of the given documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, file := range args {
				n, err := renderFile(cmd.Context(), file, opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%s: %d chart(s) written to %s\n", file, n, opts.Output)
			}
			return nil
		},
	}
	registerRenderFlags(cmd, &opts)
	return cmd
}

func registerRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", ".", "directory where SVG files are written")
	flags.BoolVar(&opts.Strict, "strict", false, "reject unknown fields")
	flags.IntVarP(&opts.Parallel, "parallel", "p", runtime.NumCPU(), "number of charts rendered at once")
}

// renderFile writes one SVG file per chart of the document and gives the
// number of files written.
func renderFile(ctx context.Context, file string, opts renderOptions) (int, error) {
	list, err := decode.LoadFile(file, decode.WithStrict(opts.Strict))
	if err != nil {
		logging.Error().Add(logging.File(file), logging.ErrorField(err)).Msg("decoding failed")
		return 0, err
	}
	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return 0, err
	}
	grp, ctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		grp.SetLimit(opts.Parallel)
	}
	for _, e := range list {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeChart(e, opts.Output)
		})
	}
	return len(list), grp.Wait()
}

func writeChart(e decode.Entry, dir string) error {
	var (
		now  = time.Now()
		name = e.Name + ".svg"
		file = filepath.Join(dir, name)
	)
	if filepath.Base(name) != name {
		return fmt.Errorf("chart %s: name can not be used as a file name", e.Name)
	}
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()

	drawing := e.Render()
	if err := paint.SVG(w, drawing); err != nil {
		logging.Error().Add(logging.Chart(e.Name), logging.ErrorField(err)).Msg("rendering failed")
		return err
	}
	logging.Info().Add(
		logging.Chart(e.Name),
		logging.Kind(e.Type),
		logging.File(file),
		logging.Shapes(len(drawing.Shapes)),
		logging.Duration(time.Since(now)),
	).Msg("chart rendered")
	return nil
}
