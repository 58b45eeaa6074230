package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-voronoi/pkg/config"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/0x0FACED/go-voronoi/pkg/render"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/0x0FACED/go-voronoi/static"
)

func newServeCmd(o *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive diagram page",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				o.cfg.Server.Addr = addr
			}
			return serve(cmd.Context(), o.cfg, o.log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, log *logger.ZapLogger) error {
	mux := http.NewServeMux()
	mux.Handle("/", &diagramHandler{defaults: cfg, log: log})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("[app] listening", zap.String("addr", cfg.Server.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

type diagramHandler struct {
	defaults config.Config
	log      *logger.ZapLogger
}

// parseForm overlays the submitted form on the defaults. Unparsable fields
// keep their default.
func parseForm(r *http.Request, cfg config.Config) config.Config {
	if r.Method != http.MethodPost {
		return cfg
	}
	if err := r.ParseForm(); err != nil {
		return cfg
	}

	setInt := func(key string, dst *int) {
		if v, err := strconv.Atoi(r.FormValue(key)); err == nil {
			*dst = v
		}
	}
	if k := r.FormValue("kind"); k != "" {
		cfg.Points.Kind = k
	}
	if c := r.FormValue("center"); c != "" {
		cfg.Diagram.Center = c
	}
	setInt("count", &cfg.Points.Count)
	setInt("width", &cfg.Points.Width)
	setInt("height", &cfg.Points.Height)
	setInt("valence", &cfg.Diagram.MaxValence)
	if v, err := strconv.ParseFloat(r.FormValue("jitter"), 64); err == nil {
		cfg.Points.Jitter = v
	}
	if v, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil {
		cfg.Points.Seed = v
	}
	return cfg
}

func (h *diagramHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	cfg := parseForm(r, h.defaults)

	// each request collects its own log for the page
	reqLog := logger.New()
	defer reqLog.ClearLogs()

	form := static.Form{
		Kind:       cfg.Points.Kind,
		Count:      cfg.Points.Count,
		Jitter:     cfg.Points.Jitter,
		Seed:       cfg.Points.Seed,
		Width:      cfg.Points.Width,
		Height:     cfg.Points.Height,
		Center:     cfg.Diagram.Center,
		MaxValence: cfg.Diagram.MaxValence,
	}

	d, err := buildDiagram(cfg, reqLog)
	if err != nil {
		h.log.Warn("[app] request failed", zap.Error(err))
		form.Error = err.Error()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := static.WriteHeader(w, form); err != nil {
		h.log.Error("[app] write page", zap.Error(err))
		return
	}

	var stats static.Stats
	if d != nil {
		if err := render.Chart(d, chartOptions(cfg.Chart)).Render(w); err != nil {
			h.log.Error("[app] render chart", zap.Error(err))
		}
		stats = pageStats(d)
	}

	if err := static.WriteMiddle(w, stats); err != nil {
		h.log.Error("[app] write page", zap.Error(err))
		return
	}
	if _, err := w.Write([]byte(reqLog.HTML())); err != nil {
		return
	}
	if err := static.WriteFooter(w); err != nil {
		h.log.Error("[app] write page", zap.Error(err))
	}
}

func chartOptions(c config.Chart) render.ChartOptions {
	return render.ChartOptions{
		Width:       c.Width,
		Height:      c.Height,
		SiteColor:   c.SiteColor,
		HullColor:   c.HullColor,
		CenterColor: c.CenterColor,
	}
}

func pageStats(d *voronoi.Diagram) static.Stats {
	s := d.Stats()
	return static.Stats{
		Points:     len(d.Points),
		Triangles:  d.Vertices.Len(),
		Cells:      s.Cells,
		Boundary:   s.Boundary,
		Truncated:  s.Truncated,
		Degenerate: s.Degenerate,
	}
}
