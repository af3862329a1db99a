package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-governor/internal/validators"
	"github.com/MKhiriev/go-sync-governor/models"
)

type OutboxValidationService struct {
	inner     OutboxService
	validator validators.Validator
}

func NewOutboxValidationService() OutboxServiceWrapper {
	return &OutboxValidationService{
		validator: validators.NewSyncItemValidator(),
	}
}

func (v *OutboxValidationService) Enqueue(ctx context.Context, item models.NewSyncItem) (models.SyncItem, error) {
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.SyncItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Enqueue(ctx, item)
}

func (v *OutboxValidationService) Restore(ctx context.Context) (int, error) {
	return v.inner.Restore(ctx)
}

func (v *OutboxValidationService) Discard(ctx context.Context, id string) (models.SyncItem, error) {
	if id == "" {
		return models.SyncItem{}, fmt.Errorf("%w: empty id", ErrInvalidDataProvided)
	}

	return v.inner.Discard(ctx, id)
}

func (v *OutboxValidationService) Pending(ctx context.Context) []models.SyncItem {
	return v.inner.Pending(ctx)
}

func (v *OutboxValidationService) Stats(ctx context.Context) models.PriorityStats {
	return v.inner.Stats(ctx)
}

func (v *OutboxValidationService) Wrap(wrapped OutboxService) OutboxService {
	v.inner = wrapped
	return v
}
