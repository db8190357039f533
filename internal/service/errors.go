// Package service implements the request-level operations over the store and
// the ledger computations. Services validate input, fetch a point-in-time
// snapshot from storage, and run the pure ledger functions over it.
//
// Error taxonomy: ErrValidation for malformed input, storage.ErrNotFound for
// unknown users/groups/expenses, storage.ErrConflict for duplicate writes,
// and ledger.ErrDataIntegrity for corrupted snapshots. The first three are
// expected caller-recoverable conditions; the last is surfaced as a hard
// failure and never masked.
package service

import "errors"

// ErrValidation indicates malformed or inconsistent input parameters.
var ErrValidation = errors.New("invalid input")
