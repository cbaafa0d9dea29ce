package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/amazego/internal/broadcast"
	"github.com/vk/amazego/internal/hcl"
	"github.com/vk/amazego/internal/metrics"
	"github.com/vk/amazego/internal/nodeid"
	"github.com/vk/amazego/internal/player"
)

// ErrNoPath is returned by Run when RequirePath is set and some maze has no path.
var ErrNoPath = errors.New("no path found")

// broadcaster publishes a search as it runs.
type broadcaster interface {
	player.Observer
	SetMaze(name string)
	Done(found bool, path nodeid.Path, tasks, visited int64)
	Close() error
}

// connectFunc opens a broadcaster.
type connectFunc func(ctx context.Context, cfg broadcast.Config) (broadcaster, error)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	loader     *hcl.Loader
	metrics    *metrics.Recorder
	connect    connectFunc
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Results go to outW
// and logs to logW, each App owning its own logger and metrics registry.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loader:  hcl.NewLoader(),
		metrics: metrics.New(),
		connect: func(ctx context.Context, cfg broadcast.Config) (broadcaster, error) {
			return broadcast.Connect(ctx, cfg)
		},
	}
}

// Metrics returns the application's metrics recorder.
func (a *App) Metrics() *metrics.Recorder {
	return a.metrics
}
