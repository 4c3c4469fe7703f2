// Package knowledgemanager_go implements the tree creation instruction of the
// knowledge-manager program in Go: a create_tree call validates its accounts,
// derives the tree owner authority from ["tree_owner", tree], and asks the
// Bubblegum program to create the tree config with that authority signing.
//
// # Packages
//
//   - pkg/knowledgemanager: instruction codec, account binding and the handler
//   - pkg/pda: program-derived address derivation and verification
//   - pkg/bubblegum: the create_tree_config surface of Bubblegum and a simulator
//   - pkg/ledger: in-memory runtime with signed cross-program invocation
//   - pkg/cluster: loads live accounts from a JSON-RPC node for dry runs
//   - pkg/shared: configuration from the environment and logger construction
//
// # Installation
//
//	go get github.com/knowledge-manager/knowledge-manager-go@latest
package knowledgemanager_go
