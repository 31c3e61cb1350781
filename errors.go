package gocube

import "errors"

// Sentinel errors for the gocube package.
var (
	// Input errors
	ErrMalformedColorData = errors.New("gocube: malformed color data")
	ErrInvalidNotation    = errors.New("gocube: invalid move notation")
	ErrInvalidFace        = errors.New("gocube: invalid face index")

	// State errors
	ErrNotColored      = errors.New("gocube: cube has not been fully colored")
	ErrSolveInProgress = errors.New("gocube: solve already in progress")

	// Transport errors
	ErrNetwork = errors.New("gocube: fetch failed")
)
