// Package bubblegum describes the tree-logic program that owns compressed
// trees after creation: its program identities, the create_tree
// (CreateTreeConfig) instruction it accepts, the tree config account it
// writes, and the sizing rules of the concurrent merkle tree it initializes.
//
// Simulator is a reference implementation of the create_tree entry point for
// the in-memory ledger runtime. It stands in for both the tree-logic program
// and the account compression program it calls, performing every check before
// writing so a rejected call leaves accounts untouched.
package bubblegum
