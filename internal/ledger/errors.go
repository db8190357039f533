package ledger

import "errors"

// ErrDataIntegrity indicates that the expense snapshot references members
// outside the group, or that computed balances no longer sum to zero.
// It signals upstream data corruption, not user error: callers must surface
// it as a hard failure rather than drop or clamp the offending data, because
// masking it would break the zero-sum invariant the settlement step relies on.
var ErrDataIntegrity = errors.New("ledger data integrity violation")
