package governor

import "errors"

var (
	// ErrInvalidStrategy is returned when a strategy has no name or no Execute function.
	ErrInvalidStrategy = errors.New("invalid cleanup strategy")
	// ErrArchiveInProgress is returned when an archival pass is already running.
	ErrArchiveInProgress = errors.New("archive already in progress")
	// ErrNoEstimator is reported when the governor has no quota estimator.
	ErrNoEstimator = errors.New("no quota estimator configured")
	// ErrNoHousekeeper is returned by archival when the governor has no housekeeper.
	ErrNoHousekeeper = errors.New("no housekeeper configured")
)
