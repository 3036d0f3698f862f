package ereport

import "errors"

var (
	// ErrInvalidLevel is a configuration error: the level name is not recognized.
	ErrInvalidLevel = errors.New("ereport: invalid level")
	// ErrOutletIndex is returned by RemoveOutletAt for an out-of-range index.
	ErrOutletIndex = errors.New("ereport: outlet index out of range")
	ErrNilOutlet   = errors.New("ereport: nil outlet")
	ErrEmptyName   = errors.New("ereport: empty reporter name")
	// ErrUnknownField is returned when a MapFormatter is asked for a field a Report does not have.
	ErrUnknownField = errors.New("ereport: unknown report field")
	// ErrClosed is returned by outlets used after Close.
	ErrClosed = errors.New("ereport: outlet closed")
)
