package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-voronoi/pkg/config"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
)

type rootOptions struct {
	configPath string
	verbose    bool

	cfg config.Config
	log *logger.ZapLogger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:          "voronoi",
		Short:        "Build Voronoi diagrams from Delaunay triangulations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zapcore.InfoLevel
			if o.verbose {
				level = zapcore.DebugLevel
			}
			o.log = logger.NewConsole(os.Stderr, level)

			o.cfg = config.Default()
			if o.configPath != "" {
				cfg, err := config.Load(o.configPath)
				if err != nil {
					return err
				}
				o.cfg = cfg
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCmd(o))
	root.AddCommand(newRenderCmd(o))
	return root
}
