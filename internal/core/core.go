package core

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/roamlog/roam-api/internal/core/srv"
	"github.com/roamlog/roam-api/internal/store"
	"github.com/roamlog/roam-api/internal/store/sqlstore"
	"github.com/roamlog/roam-api/pkg/utils"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores     func() store.Provider
	httpClient *http.Client
	httpEngine *gin.Engine

	metrics  *Metrics
	limiters *limiterStore
}

func MustSetupCore(cfg CoreConfig) *Core {
	setupLogger(cfg.Log)
	utils.SetupIDWorker(1)

	core := &Core{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second * 10},
		metrics:    NewMetrics("roam_api", "core"),
		limiters:   newLimiterStore(),
	}

	setupPostgresStore(core)

	core.srv = srv.SetupSrvs(
		srv.ApplyCredentials(cfg.Security),
		srv.ApplyCountryDirectory(cfg.Countries, core.httpClient),
	)

	return core
}

// NewWithStore builds a Core on an injected store provider. Tests use it to
// avoid a live database.
func NewWithStore(cfg CoreConfig, provider store.Provider) *Core {
	utils.SetupIDWorker(1)

	core := &Core{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second * 10},
		metrics:    NewMetrics("roam_api", "core"),
		limiters:   newLimiterStore(),
		stores: func() store.Provider {
			return provider
		},
	}

	core.srv = srv.SetupSrvs(
		srv.ApplyCredentials(cfg.Security),
		srv.ApplyCountryDirectory(cfg.Countries, core.httpClient),
	)

	return core
}

func setupLogger(cfg Log) {
	var writer io.Writer = os.Stdout
	if cfg.Path != "" {
		writer = &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}
	l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(l)
}

func setupPostgresStore(core *Core) {
	p := sqlstore.MustSetup(core.cfg.Postgres)
	core.stores = func() store.Provider {
		return p()
	}
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Store() store.Provider {
	return s.stores()
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) HttpEngine() *gin.Engine {
	if s.httpEngine == nil {
		s.httpEngine = gin.New()
		s.httpEngine.Use(gin.Recovery())
	}
	return s.httpEngine
}
