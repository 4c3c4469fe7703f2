// Package ledger is an in-memory ledger runtime that executes program
// instructions against a set of accounts.
//
// It models the parts of the execution environment the knowledge-manager
// program relies on: per-instruction signer and writable privileges,
// cross-program invocation where a calling program signs for its own derived
// addresses by presenting seeds, and all-or-nothing application of account
// changes. A failed Execute leaves every supplied account exactly as it was.
package ledger
