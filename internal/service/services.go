package service

import (
	"github.com/MKhiriev/go-sync-governor/internal/adapter"
	"github.com/MKhiriev/go-sync-governor/internal/config"
	"github.com/MKhiriev/go-sync-governor/internal/governor"
	"github.com/MKhiriev/go-sync-governor/internal/interval"
	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/internal/priority"
	"github.com/MKhiriev/go-sync-governor/internal/store"
	"github.com/MKhiriev/go-sync-governor/internal/utils"
	"github.com/MKhiriev/go-sync-governor/models"
)

// Components are the governor parts the services are built around.
type Components struct {
	Scheduler  *priority.Scheduler
	Controller *interval.Controller
	Governor   *governor.Governor
	Transport  adapter.Transport
	BuildInfo  models.AppBuildInfo
}

type Services struct {
	OutboxService  OutboxService
	SyncJob        SyncJob
	StatePersister StatePersister
	NetworkService NetworkService
	StorageService StorageService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, components Components, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(components.BuildInfo, logger)
	if err != nil {
		return nil, err
	}

	outbox := NewOutboxValidationService().Wrap(
		NewOutboxService(
			storages.OutboxRepository,
			components.Scheduler,
			components.Governor,
			utils.NewUUIDGenerator(),
			logger.Component("outbox"),
		),
	)

	return &Services{
		OutboxService: outbox,
		SyncJob: NewSyncJob(
			cfg.Workers.BatchSize,
			storages.OutboxRepository,
			components.Scheduler,
			components.Transport,
			components.Controller,
			logger.Component("sync"),
		),
		StatePersister: NewStatePersister(
			cfg.Workers.PersistInterval,
			storages.StateRepository,
			components.Controller,
			components.Governor,
			logger.Component("state"),
		),
		NetworkService: components.Controller,
		StorageService: components.Governor,
		AppInfoService: appInfo,
	}, nil
}
