package daemon

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-sync-governor/internal/adapter"
	"github.com/MKhiriev/go-sync-governor/internal/config"
	"github.com/MKhiriev/go-sync-governor/internal/governor"
	"github.com/MKhiriev/go-sync-governor/internal/handler"
	"github.com/MKhiriev/go-sync-governor/internal/interval"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/priority"
	"github.com/MKhiriev/go-sync-governor/internal/server"
	"github.com/MKhiriev/go-sync-governor/internal/service"
	"github.com/MKhiriev/go-sync-governor/internal/store"
	"github.com/MKhiriev/go-sync-governor/internal/workers"
	"github.com/MKhiriev/go-sync-governor/models"
)

// App is the sync daemon: the governor components, their background
// workers and the status API, sharing one local database.
type App struct {
	storages *store.Storages
	services *service.Services
	workers  *workers.Workers
	server   server.Server

	controller *interval.Controller
	logger     *logger.Logger
}

// NewApp wires the daemon from cfg. Files are managed on the OS filesystem.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	return newApp(ctx, cfg, buildInfo, afero.NewOsFs(), log)
}

func newApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, fs afero.Fs, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage.Database(), log.Component("store"))
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	a, err := wire(cfg, buildInfo, storages, fs, log)
	if err != nil {
		storages.Close()
		return nil, err
	}

	return a, nil
}

func wire(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, storages *store.Storages, fs afero.Fs, log *logger.Logger) (*App, error) {
	govCfg := governorConfig(cfg.Governor)
	dataDir := cfg.Storage.Files.DataDir

	keeper := governor.NewFSHousekeeper(fs, dataDir, govCfg, log)
	if err := keeper.Init(); err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}
	gov := governor.NewGovernor(govCfg, governor.NewDirEstimator(fs, dataDir, cfg.Storage.Files.QuotaMB), keeper, log)

	probe, err := adapter.NewHTTPNetworkProbe(cfg.Adapter, log.Component("probe"))
	if err != nil {
		return nil, fmt.Errorf("create network probe: %w", err)
	}
	transport, err := adapter.NewHTTPTransport(cfg.Adapter, log.Component("transport"))
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	scheduler := priority.NewScheduler(priorityConfig(cfg.Priority), log)
	controller := interval.NewController(intervalConfig(cfg.Interval), probe, log)

	services, err := service.NewServices(storages, service.Components{
		Scheduler:  scheduler,
		Controller: controller,
		Governor:   gov,
		Transport:  transport,
		BuildInfo:  buildInfo,
	}, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}
	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		// stopped in reverse order, the persister last
		workers: workers.New(
			services.StatePersister,
			scheduler,
			controller,
			gov,
			services.SyncJob,
		),
		server:     srv,
		controller: controller,
		logger:     log,
	}, nil
}

// Run restores persisted state, starts the background workers and serves the
// status API until ctx is cancelled. Workers are stopped and the database is
// closed before Run returns.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if err := a.services.StatePersister.Restore(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("failed to restore component state, starting fresh")
	}

	restored, err := a.services.OutboxService.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore outbox: %w", err)
	}
	a.logger.Info().Int("items", restored).Msg("pending items loaded")

	a.controller.ForceAdaptation(ctx)

	a.workers.Start(ctx)
	defer a.workers.Stop()

	return a.server.Run(ctx)
}

func (a *App) close() {
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("failed to close database")
	}
}
