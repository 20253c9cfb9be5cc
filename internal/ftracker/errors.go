package ftracker

import "errors"

var (
	// ErrUnknownTraining is returned for a workout code missing from the dispatch table.
	ErrUnknownTraining = errors.New("unknown training type")
	// ErrInvalidPackage is returned when sensor data does not fit the training fields.
	ErrInvalidPackage = errors.New("invalid sensor package")
	// ErrNotImplemented is returned by formulas the base training does not define.
	ErrNotImplemented = errors.New("not implemented")
)
