package domain

import "errors"

// ErrStopped is returned by the three blocking operations — RequestComputation,
// GetWork, GetNextResult — when the manager has been stopped before or during
// the wait. It is never returned by a non-blocking operation. Callers should
// treat it as terminal: no further call on the same manager is meaningful.
var ErrStopped = errors.New("computation manager stopped")
