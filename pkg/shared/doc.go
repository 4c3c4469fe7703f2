// Package shared provides common utilities used across the knowledge-manager
// packages. It includes program identity configuration, environment and .env
// loading, public key parsing, and zerolog logger construction.
//
// # Environment Variables
//
// ProgramConfigFromEnv reads the following variables, loading a .env file from
// the working directory (or any parent) first when one is present. Variables
// already set in the process environment always win over the .env file.
//
//   - KNOWLEDGE_MANAGER_PROGRAM_ID: program id the tree owner authority is derived under
//   - BUBBLEGUM_PROGRAM_ID: tree-logic program receiving the create_tree call
//   - LOG_WRAPPER_PROGRAM_ID (or NOOP_PROGRAM_ID): append-only log program
//   - COMPRESSION_PROGRAM_ID: account compression program owning the merkle tree
//   - LOG_LEVEL: zerolog level name, defaults to info
package shared
