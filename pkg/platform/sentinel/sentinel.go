package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors exactly once.
//
//   - ErrNotFound: no entry exists for the key
//   - ErrConflict: the key is already taken and will not be overwritten
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
