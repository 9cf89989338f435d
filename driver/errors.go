package driver

import "errors"

// Sentinel errors for the driver package.
var (
	// ErrNoMeshFiles indicates a batch input directory contained no .obj files.
	ErrNoMeshFiles = errors.New("driver: input directory has no .obj files")

	// ErrLogNotFound indicates Evaluate was asked to read a batch log that
	// Batch has not yet produced.
	ErrLogNotFound = errors.New("driver: simplification_log.csv not found; run batch first")

	// ErrBadLogRow indicates a row of simplification_log.csv does not have
	// the expected column count.
	ErrBadLogRow = errors.New("driver: malformed simplification_log.csv row")
)
