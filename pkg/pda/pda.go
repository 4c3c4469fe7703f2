package pda

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

const (
	// MaxSeedLength is the longest a single seed may be.
	MaxSeedLength = 32
	// MaxSeeds counts the bump seed.
	MaxSeeds = 16
)

var (
	ErrMaxSeedLengthExceeded = errors.New("seed exceeds maximum length")
	ErrTooManySeeds          = errors.New("too many seeds")
	ErrNoViableBump          = errors.New("unable to find a viable program address bump seed")
	ErrNonCanonicalBump      = errors.New("bump is not the canonical bump for the seeds")
	ErrAddressMismatch       = errors.New("derived address does not match the expected address")
)

// Derivation is the output of a canonical derivation.
type Derivation struct {
	Address solana.PublicKey
	Bump    uint8
}

// SignerSeeds returns the seed set that proves authority over d.Address.
func (d Derivation) SignerSeeds(seeds [][]byte) [][]byte {
	return WithBump(seeds, d.Bump)
}

// Derive is FindProgramAddress returning a Derivation.
func Derive(seeds [][]byte, programID solana.PublicKey) (Derivation, error) {
	address, bump, err := FindProgramAddress(seeds, programID)
	if err != nil {
		return Derivation{}, err
	}
	return Derivation{Address: address, Bump: bump}, nil
}

// FindProgramAddress returns the canonical address and bump for seeds under
// programID.
func FindProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	if err := validateSeeds(seeds, 1); err != nil {
		return solana.PublicKey{}, 0, err
	}

	for bump := 255; bump >= 0; bump-- {
		address, err := solana.CreateProgramAddress(WithBump(seeds, uint8(bump)), programID)
		if err == nil {
			return address, uint8(bump), nil
		}
	}

	return solana.PublicKey{}, 0, ErrNoViableBump
}

// CreateProgramAddress hashes the full seed set, bump included, and fails if
// the result lies on the ed25519 curve.
func CreateProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, error) {
	if err := validateSeeds(seeds, 0); err != nil {
		return solana.PublicKey{}, err
	}

	address, err := solana.CreateProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid program address seeds: %w", err)
	}
	return address, nil
}

// VerifyProgramAddress checks that bump is the canonical bump for seeds under
// programID and that the resulting address equals expected.
func VerifyProgramAddress(
	seeds [][]byte,
	bump uint8,
	programID solana.PublicKey,
	expected solana.PublicKey,
) error {
	derivation, err := Derive(seeds, programID)
	if err != nil {
		return err
	}
	if derivation.Bump != bump {
		return fmt.Errorf("%w: got %d want %d", ErrNonCanonicalBump, bump, derivation.Bump)
	}
	if !derivation.Address.Equals(expected) {
		return fmt.Errorf("%w: derived %s expected %s", ErrAddressMismatch, derivation.Address, expected)
	}
	return nil
}

// WithBump returns a new seed slice ending in the single-byte bump seed.
func WithBump(seeds [][]byte, bump uint8) [][]byte {
	result := make([][]byte, 0, len(seeds)+1)
	result = append(result, seeds...)
	return append(result, []byte{bump})
}

func validateSeeds(seeds [][]byte, reserved int) error {
	if len(seeds)+reserved > MaxSeeds {
		return fmt.Errorf("%w: %d", ErrTooManySeeds, len(seeds)+reserved)
	}
	for index, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return fmt.Errorf("%w: seed %d is %d bytes", ErrMaxSeedLengthExceeded, index, len(seed))
		}
	}
	return nil
}
