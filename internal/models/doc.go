// Package models defines the core domain models for Splitledger.
//
// # Models
//
//   - User: a registered participant, identified by username
//   - Group: a shared ledger owned by one user, with an ordered member list
//   - Expense: a single recorded cost with a payer and a split policy
//   - Split: the policy describing which members share an expense
//   - Payment: a recorded settle-up of one member's share of one expense
//
// # Design Principles
//
//  1. Members are referenced by username strings; usernames are unique and opaque.
//  2. Monetary amounts are stored as integer cents (int64). Conversion to and
//     from decimal happens only at the serialization boundary, never here.
//  3. Avoid circular references: models hold ID strings, not pointers.
//  4. Expenses are immutable after creation; a correction is a delete plus re-add.
//
// Balances and transfers are not models: they are pure computations over an
// expense snapshot and live in the ledger package.
package models
