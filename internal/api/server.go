// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the leave bot.
package api

import (
	_ "embed"
	"fmt"
	"io/fs"
	"leavebot"
	"leavebot/internal/api/handler/v1handler"
	"leavebot/internal/config"
	"leavebot/pkg/controller"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// HandlerOptions configures the v1 handlers.
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":3000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// Pprof mounts net/http/pprof under /debug/pprof/.
	Pprof bool
	// CORSAllowedOrigins lists the origins allowed by CORS.
	CORSAllowedOrigins []string
	// StaticDir serves the LIFF form from disk when set.
	StaticDir string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HandlerOptions: v1handler.NewOptions(cfg),

		Addr:               cfg.Addr(),
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout:  cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		RequestTimeout:     cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:     cfg.HTTP.MaxHeaderBytes,
		MetricsPath:        cfg.HTTP.MetricsPath,
		Pprof:              cfg.HTTP.Pprof,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		StaticDir:          cfg.LIFF.StaticDir,
	}
}

type Deps struct {
	v1handler.Deps

	// Gatherer backs the metrics endpoint. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - webhook, LIFF and leave routes
// - the LIFF form static files under /liff/
// - pprof endpoints for profiling, when enabled
// It also wraps the router with recovery, CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	static, err := staticFS(opts.StaticDir)
	if err != nil {
		return nil, err
	}

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	r := chi.NewRouter()
	r.Use(controller.WithLogger)
	r.Use(middleware.Recoverer)
	r.Use(controller.CORS(opts.CORSAllowedOrigins))

	// prometheus metrics server
	r.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Leave Bot",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	v1handler.New(deps.Deps, opts.HandlerOptions).Register(r)

	// LIFF form
	r.Get("/liff", http.RedirectHandler("/liff/", http.StatusMovedPermanently).ServeHTTP)
	r.Handle("/liff/*", http.StripPrefix("/liff", http.FileServer(http.FS(static))))

	if opts.Pprof {
		r.Mount("/debug/pprof", controller.PprofRouter())
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           controller.WithTimeout(opts.RequestTimeout)(r),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// staticFS returns the LIFF form files: dir when set, the embedded copy otherwise.
func staticFS(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("could not open liff static dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("liff static dir %q is not a directory", dir)
		}

		return os.DirFS(dir), nil
	}

	sub, err := fs.Sub(leavebot.Web, "web")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded liff form: %w", err)
	}

	return sub, nil
}
