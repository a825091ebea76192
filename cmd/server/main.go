package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/punchkit/punchkit/locales"
	"github.com/punchkit/punchkit/pkg/catalog"
	"github.com/punchkit/punchkit/pkg/config"
	"github.com/punchkit/punchkit/pkg/httpserver"
	"github.com/punchkit/punchkit/pkg/locale"
	"github.com/punchkit/punchkit/pkg/logger"
	"github.com/punchkit/punchkit/webapi"
)

// Config is the server's environment configuration. LOCALE_DIR overrides the
// embedded message catalogs with a directory on disk.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LocaleDir       string        `env:"LOCALE_DIR"`
	Languages       []string      `env:"LANGUAGES" envSeparator:","`
	Environment     string        `env:"ENVIRONMENT" envDefault:"production"`
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	logOpt := logger.WithProduction("punchkit")
	if cfg.Environment != "production" {
		logOpt = logger.WithDevelopment("punchkit")
	}
	log := logger.New(logOpt, logger.WithContextExtractors(webapi.RequestIDExtractor()))
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("Server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	source := catalog.NewFSSource(locales.FS(), catalog.NewJSONParser())
	if cfg.LocaleDir != "" {
		source = catalog.NewDirSource(cfg.LocaleDir, catalog.NewJSONParser())
	}

	langs := make([]locale.Language, 0, len(cfg.Languages))
	for _, code := range cfg.Languages {
		langs = append(langs, locale.Parse(code))
	}

	// A language whose required namespaces cannot load keeps the process
	// from starting; serving it silently broken is worse than not starting.
	registry, err := catalog.NewRegistry(ctx, source, langs, catalog.WithLogger(log))
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "Message catalogs loaded", "languages", len(registry.Languages()))

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithShutdownTimeout(cfg.ShutdownTimeout),
		httpserver.WithLogger(log),
	)

	return srv.Run(ctx, webapi.Router(webapi.New(registry, log)))
}
