package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-voronoi/pkg/render"
)

func newRenderCmd(o *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the configured diagram to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" {
				o.cfg.Render.Out = out
			}
			defer o.log.Sync() //nolint:errcheck

			d, err := buildDiagram(o.cfg, o.log)
			if err != nil {
				return err
			}

			f, err := os.Create(o.cfg.Render.Out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			opts := render.DefaultPNGOptions
			opts.Width, opts.Height = o.cfg.Render.Width, o.cfg.Render.Height
			if err := render.PNG(f, d, opts); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("write %s: %w", o.cfg.Render.Out, err)
			}

			o.log.Info("[app] diagram written", zap.String("path", o.cfg.Render.Out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path (default from config)")
	return cmd
}
