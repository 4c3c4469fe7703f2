// Package knowledgemanager implements the knowledge-manager program's
// create_tree instruction, which initializes a compressed tree by handing the
// tree configuration bookkeeping to the Bubblegum tree-logic program.
//
// The instruction runs in two stages. BindCreateTree is the account-binding
// layer: it checks the shape, ownership and initialization state of every
// supplied account, confirms the program identities, and derives the tree
// owner authority from the seeds ["tree_owner", tree]. Program.CreateTree is
// the handler: it re-verifies the authority derivation, builds the Bubblegum
// create_tree call, and invokes it signed with the authority's seeds. The
// handler never mutates accounts itself; a failed call is returned exactly as
// the invoker reported it.
//
// Program.Process wires both stages behind the ledger.Processor entrypoint.
package knowledgemanager
