package governor

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const bytesPerMB = 1024 * 1024

// DirEstimator implements [QuotaEstimator] by summing the sizes of all files
// under a directory against a fixed quota.
type DirEstimator struct {
	fs      afero.Fs
	root    string
	quotaMB float64
}

// NewDirEstimator creates an estimator for root with a quota of quotaMB.
func NewDirEstimator(fs afero.Fs, root string, quotaMB float64) *DirEstimator {
	return &DirEstimator{fs: fs, root: root, quotaMB: quotaMB}
}

// Estimate implements QuotaEstimator. A missing root counts as empty.
func (d *DirEstimator) Estimate(ctx context.Context) (float64, float64, error) {
	ok, err := afero.DirExists(d.fs, d.root)
	if err != nil {
		return 0, 0, fmt.Errorf("stat storage root: %w", err)
	}
	if !ok {
		return 0, d.quotaMB, nil
	}

	var total int64
	err = afero.Walk(d.fs, d.root, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("walk storage root: %w", err)
	}

	return float64(total) / bytesPerMB, d.quotaMB, nil
}
