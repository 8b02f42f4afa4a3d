package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/decidiag/internal/decision"
	"github.com/san-kum/decidiag/internal/figure"
)

const shutdownTimeout = 5 * time.Second

type Options struct {
	Addr          string
	DefaultParams decision.Params
	Width, Height int
}

// Server hosts the interactive page. Requests carry their own parameters;
// nothing is shared between them.
type Server struct {
	opts   Options
	grid   decision.Grid
	logger *zap.Logger
	mux    *http.ServeMux
}

func New(opts Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Width <= 0 {
		opts.Width = figure.DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = figure.DefaultHeight
	}
	s := &Server{
		opts:   opts,
		grid:   decision.NewGrid(),
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("GET /figure.png", s.handleFigure(figure.PNG))
	s.mux.HandleFunc("GET /figure.svg", s.handleFigure(figure.SVG))
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

// Run serves on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("serving diagram", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ListenAndServe listens on the configured address and calls Run.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return s.Run(ctx, ln)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	params, err := s.parseParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	field := decision.Classify(params, s.grid)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageView(params, field, s.opts.Width, s.opts.Height)); err != nil {
		s.logger.Error("page render failed", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleFigure(format figure.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := s.parseParams(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		id := uuid.NewString()
		start := time.Now()

		fig := figure.New(decision.Classify(params, s.grid), s.grid, params)
		fig.Width, fig.Height = s.opts.Width, s.opts.Height

		var buf bytes.Buffer
		if err := fig.Render(&buf, format); err != nil {
			s.logger.Error("figure render failed", zap.String("render_id", id), zap.Error(err))
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}

		s.logger.Info("figure rendered",
			zap.String("render_id", id),
			zap.String("format", format.String()),
			zap.Float64("p", params.P),
			zap.Float64("c", params.C),
			zap.Int("bytes", buf.Len()),
			zap.Duration("elapsed", time.Since(start)),
		)
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("X-Render-ID", id)
		w.Write(buf.Bytes())
	}
}

// parseParams reads p and c from the query. Missing values fall back to the
// server defaults; present values must parse and lie within their slider.
func (s *Server) parseParams(q url.Values) (decision.Params, error) {
	params := s.opts.DefaultParams.Snapped()
	if raw := q.Get(decision.SliderP.Name); raw != "" {
		v, err := decision.SliderP.Parse(raw)
		if err != nil {
			return params, err
		}
		params.P = v
	}
	if raw := q.Get(decision.SliderC.Name); raw != "" {
		v, err := decision.SliderC.Parse(raw)
		if err != nil {
			return params, err
		}
		params.C = v
	}
	return params, nil
}

func encodeParams(p decision.Params) string {
	q := url.Values{}
	q.Set(decision.SliderP.Name, decision.SliderP.Format(p.P))
	q.Set(decision.SliderC.Name, decision.SliderC.Format(p.C))
	return q.Encode()
}
