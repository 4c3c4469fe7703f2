// Package pda derives and verifies program-derived addresses.
//
// A program-derived address is sha256(seeds ‖ bump ‖ program id ‖
// "ProgramDerivedAddress") for the highest bump in 255..0 whose digest is not
// a valid ed25519 point. Because no private key exists for such an address, a
// program proves authority over it by presenting the seeds and bump, which any
// verifier can re-run. The canonical bump is the first one found; any other
// bump is rejected by VerifyProgramAddress even when it yields an off-curve
// address.
package pda
