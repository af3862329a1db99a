package governor

import (
	"context"

	"github.com/MKhiriev/go-sync-governor/models"
)

//go:generate mockgen -source=quota.go -destination=../mock/quota_estimator_mock.go -package=mock

// QuotaEstimator reports local storage usage and the quota, both in MB.
type QuotaEstimator interface {
	Estimate(ctx context.Context) (usedMB, quotaMB float64, err error)
}

// ComputeQuota derives the full quota snapshot from raw usage. A zero quota
// yields a zero percentage and is never reported as exceeded.
func ComputeQuota(cfg Config, used, quota float64) models.StorageQuota {
	q := models.StorageQuota{
		Used:  used,
		Quota: quota,
	}
	if quota > 0 {
		q.Percentage = used / quota * 100
	}
	q.Available = max(0, quota-used)
	q.IsQuotaWarning = q.Percentage > cfg.WarningThreshold
	q.IsQuotaCritical = q.Percentage > cfg.CriticalThreshold
	q.IsQuotaExceeded = quota > 0 && used >= quota
	return q
}
