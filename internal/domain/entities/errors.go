package entities

import "errors"

// Domain errors shared by the use cases and every persistence adapter.
var (
	ErrGravesiteNotFound  = errors.New("gravesite not found")
	ErrContractNotFound   = errors.New("contract not found")
	ErrPlotholderNotFound = errors.New("plot-holder not found")
	ErrDeceasedNotFound   = errors.New("deceased record not found")

	ErrGravesiteFull          = errors.New("gravesite is full")
	ErrCapacityExceeded       = errors.New("gravesite capacity exceeded")
	ErrCapacityBelowOccupancy = errors.New("capacity below current occupancy")
	ErrInvalidCapacity        = errors.New("invalid capacity")
	ErrInvalidGravesiteStatus = errors.New("invalid gravesite status")
	ErrInvariantViolation     = errors.New("gravesite invariant violation")
	ErrGravesiteInUse         = errors.New("gravesite has occupants or contracts")
	ErrConcurrentUpdate       = errors.New("gravesite modified concurrently")

	ErrDuplicateContract = errors.New("contract already exists for plot-holder and gravesite")
	ErrInvalidTransition = errors.New("invalid contract status transition")
	ErrNoActiveContract  = errors.New("no active contract for plot-holder and gravesite")

	ErrPlotholderExists = errors.New("plot-holder already exists")
	ErrPlotholderInUse  = errors.New("plot-holder has contracts or deceased records")
)
