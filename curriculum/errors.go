package curriculum

import "errors"

var (
	// ErrInvalidSchedule is returned when a schedule fails validation.
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrShufflerRequired is returned when an applier is built without a shuffler.
	ErrShufflerRequired = errors.New("shuffler required")

	// ErrApplierReleased is returned when Apply is called after Release.
	ErrApplierReleased = errors.New("applier released")
)
