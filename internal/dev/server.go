package dev

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/razen-core/rynex/internal/config"
	"github.com/razen-core/rynex/internal/routescan"
)

const tracerName = "rynex/dev"

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives server log output. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics is the metrics collector. Defaults to a fresh one.
	Metrics *Metrics

	// OnBuildStart is called when a rebuild starts.
	OnBuildStart func()

	// OnBuildComplete is called when a rebuild completes.
	OnBuildComplete func(result CompileResult)

	// OnReload is called when browsers are reloaded.
	OnReload func(clients int)
}

// Server is the development server.
type Server struct {
	config     *config.Config
	options    ServerOptions
	logger     *slog.Logger
	metrics    *Metrics
	tracer     trace.Tracer
	compiler   *Compiler
	watcher    *Watcher
	reloadHub  *ReloadHub
	changeCh   chan Change
	httpServer *http.Server
	mu         sync.Mutex
	running    bool
	appPort    int
	hotReload  bool
}

// NewServer creates a new development server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	projectDir := cfg.Dir()

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := options.Metrics
	if metrics == nil {
		metrics = NewMetrics(MetricsConfig{})
	}

	compiler := NewCompiler(CompilerConfig{
		ProjectPath: projectDir,
		Env:         []string{fmt.Sprintf("PORT=%d", cfg.Dev.Port+1)},
	})

	var watchPaths []string
	for _, p := range cfg.Dev.Watch {
		if !filepath.IsAbs(p) {
			p = filepath.Join(projectDir, p)
		}
		watchPaths = append(watchPaths, p)
	}

	ignore := append(append([]string{}, DefaultIgnore...), cfg.Dev.Ignore...)
	if cfg.Build.Output != "" {
		ignore = append(ignore, cfg.Build.Output)
	}
	watcher := NewWatcher(WatcherConfig{
		Paths:     watchPaths,
		RoutesDir: cfg.RoutesPath(),
		Ignore:    ignore,
		Debounce:  time.Duration(cfg.Dev.DebounceMs) * time.Millisecond,
	})

	var hub *ReloadHub
	if cfg.Dev.HotReload {
		hub = NewReloadHub()
	}

	return &Server{
		config:    cfg,
		options:   options,
		logger:    logger,
		metrics:   metrics,
		tracer:    otel.Tracer(tracerName),
		compiler:  compiler,
		watcher:   watcher,
		reloadHub: hub,
		appPort:   cfg.Dev.Port + 1,
		hotReload: cfg.Dev.HotReload,
	}
}

// Start starts the development server. It blocks until the context is
// cancelled or the HTTP server fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	// Initial build.
	s.logger.Info("building")
	result := s.rebuild(ctx)
	if !result.Success {
		s.logger.Error("build failed", "output", result.Output)
		s.notifyError(result.Error, result.Output)
	} else {
		s.logger.Info("built", "duration", result.Duration.Round(time.Millisecond))
		if err := s.compiler.Start(ctx); err != nil {
			s.logger.Error("failed to start app", "err", err)
		}
	}

	// Watch for changes.
	s.changeCh = make(chan Change, 64)
	s.watcher.OnChange(func(change Change) {
		select {
		case s.changeCh <- change:
		default:
		}
	})
	go s.watcher.Start(ctx)
	go s.processChanges(ctx)

	// HTTP routes.
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	if s.reloadEnabled() {
		r.Get("/_rynex/reload", s.reloadHub.HandleWebSocket)
	}
	r.Handle("/_rynex/metrics", s.metrics.Handler())
	r.With(s.metrics.Middleware).Handle("/*", http.HandlerFunc(s.proxyHandler))

	s.httpServer = &http.Server{
		Addr:    s.config.DevAddress(),
		Handler: r,
	}

	s.logger.Info("server running", "url", s.config.DevURL())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the development server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.running = false
	s.watcher.Stop()
	s.compiler.Stop()
	if s.reloadHub != nil {
		s.reloadHub.Close()
	}

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// rebuild compiles the project inside a span and records metrics.
func (s *Server) rebuild(ctx context.Context) CompileResult {
	ctx, span := s.tracer.Start(ctx, "dev.rebuild")
	defer span.End()

	result := s.compiler.Build(ctx)

	span.SetAttributes(
		attribute.Bool("build.success", result.Success),
		attribute.Int64("build.duration_ms", result.Duration.Milliseconds()),
	)
	if !result.Success {
		span.SetStatus(codes.Error, "build failed")
		if result.Error != nil {
			span.RecordError(result.Error)
		}
	}

	s.metrics.ObserveRebuild(result.Success, result.Duration)
	return result
}

// processChanges serializes file change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(ctx, changes)
		}
	}
}

// handleChanges handles a batch of file changes.
func (s *Server) handleChanges(ctx context.Context, changes []Change) {
	if len(changes) == 0 {
		return
	}

	hasSource, hasRoute, hasStyle, hasAsset := false, false, false, false
	for _, change := range changes {
		s.logger.Info("changed", "path", change.Path)
		switch change.Type {
		case ChangeSource:
			hasSource = true
		case ChangeRoute:
			hasRoute = true
		case ChangeStyle:
			hasStyle = true
		case ChangeAsset:
			hasAsset = true
		}
	}

	if hasSource || hasRoute {
		s.handleSourceChange(ctx, hasRoute)
		return
	}
	if hasStyle {
		s.handleStyleChange(changes)
		return
	}
	if hasAsset {
		s.handleAssetChange()
	}
}

func (s *Server) handleSourceChange(ctx context.Context, routesChanged bool) {
	// Route file changes are checked for conflicts before rebuilding, so
	// the browser overlay shows the routing error rather than a compile one.
	if routesChanged {
		if _, err := routescan.NewScanner(s.config.RoutesPath()).Scan(); err != nil {
			s.logger.Error("route scan failed", "err", err)
			s.notifyError(err, "")
			return
		}
	}

	if s.options.OnBuildStart != nil {
		s.options.OnBuildStart()
	}

	s.logger.Info("rebuilding")
	result := s.rebuild(ctx)

	if s.options.OnBuildComplete != nil {
		s.options.OnBuildComplete(result)
	}

	if !result.Success {
		s.logger.Error("build failed", "output", result.Output)
		s.notifyError(result.Error, result.Output)
		return
	}

	s.logger.Info("built", "duration", result.Duration.Round(time.Millisecond))
	s.clearReloadError()

	if err := s.compiler.Restart(ctx); err != nil {
		s.logger.Error("failed to restart app", "err", err)
		return
	}

	// Brief pause so the app can bind its port before browsers reconnect.
	time.Sleep(100 * time.Millisecond)
	s.notifyReload()
}

func (s *Server) handleStyleChange(changes []Change) {
	if !s.reloadEnabled() {
		s.logger.Info("css changed (hot reload disabled)")
		return
	}

	for _, change := range changes {
		if change.Type == ChangeStyle {
			s.reloadHub.NotifyCSS(change.Path)
			break
		}
	}
	s.metrics.ObserveReload()
	s.logger.Info("css reloaded")
}

func (s *Server) handleAssetChange() {
	if !s.reloadEnabled() {
		s.logger.Info("asset changed (hot reload disabled)")
		return
	}
	s.notifyReload()
}

// proxyHandler proxies requests to the app process.
func (s *Server) proxyHandler(w http.ResponseWriter, r *http.Request) {
	target := fmt.Sprintf("http://localhost:%d", s.appPort)
	targetURL, _ := url.Parse(target)

	proxy := httputil.NewSingleHostReverseProxy(targetURL)

	// Inject the reload client script into HTML responses.
	proxy.ModifyResponse = func(resp *http.Response) error {
		if !s.reloadEnabled() {
			return nil
		}
		if !strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
			return nil
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		resp.Body.Close()

		bodyStr := string(body)
		if idx := strings.LastIndex(bodyStr, "</body>"); idx != -1 {
			bodyStr = bodyStr[:idx] + ReloadClientScript + bodyStr[idx:]
		} else if idx := strings.LastIndex(bodyStr, "</html>"); idx != -1 {
			bodyStr = bodyStr[:idx] + ReloadClientScript + bodyStr[idx:]
		} else {
			bodyStr += ReloadClientScript
		}

		resp.Body = io.NopCloser(strings.NewReader(bodyStr))
		resp.ContentLength = int64(len(bodyStr))
		resp.Header.Set("Content-Length", fmt.Sprintf("%d", len(bodyStr)))
		return nil
	}

	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		reloadScript := ""
		if s.reloadEnabled() {
			reloadScript = ReloadClientScript
		}
		fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>Rynex Dev Server</title></head>
<body style="font-family: system-ui; padding: 40px; background: #1a1a1a; color: #fff;">
<h1 style="color: #ff5555;">Application Not Running</h1>
<p>The application server is not responding. This could mean:</p>
<ul>
<li>The app is still starting up</li>
<li>There was a build error (check your terminal)</li>
<li>The app crashed on startup</li>
</ul>
<p style="color: #888;">The page will automatically reload when the app is ready.</p>
%s
</body>
</html>`, reloadScript)
	}

	proxy.ServeHTTP(w, r)
}

func (s *Server) reloadEnabled() bool {
	return s.hotReload && s.reloadHub != nil
}

func (s *Server) notifyReload() {
	if !s.reloadEnabled() {
		s.logger.Info("hot reload disabled; rebuild complete")
		return
	}

	s.reloadHub.NotifyReload()
	s.metrics.ObserveReload()
	s.metrics.SetReloadClients(s.reloadHub.ClientCount())
	if s.options.OnReload != nil {
		s.options.OnReload(s.reloadHub.ClientCount())
	}
	s.logger.Info("reloaded browsers", "clients", s.reloadHub.ClientCount())
}

func (s *Server) notifyError(err error, output string) {
	if s.reloadEnabled() {
		s.reloadHub.NotifyError(overlayFromError(err, output))
	}
}

func (s *Server) clearReloadError() {
	if s.reloadEnabled() {
		s.reloadHub.ClearError()
	}
}
