// Package cluster loads live account state from a Solana JSON-RPC node into
// the in-memory ledger, so a create_tree instruction can be dry-run against
// the accounts it would touch on a real cluster.
//
// Accounts are fetched with getMultipleAccounts in batches of at most
// MaxAccountsPerRequest keys. Addresses with no on-chain account are returned
// as empty system-owned accounts, matching how the runtime treats an
// unallocated address.
package cluster
