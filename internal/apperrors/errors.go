package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConfiguration indicates malformed reference data (empty template pool,
// undefined formula variable). Fatal at generation time: the simulation is
// aborted rather than partially defined.
var ErrConfiguration = errors.New("configuration error")

// ErrLocked indicates an action on a transaction that has not been unlocked yet.
var ErrLocked = errors.New("transaction is locked")

// ErrCompleted indicates an action on a transaction or session that already finished.
var ErrCompleted = errors.New("already completed")
