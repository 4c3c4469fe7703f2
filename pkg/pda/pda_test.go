package pda

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
)

var (
	testProgramID = solana.MustPublicKeyFromBase58("EHLv9ANXJMm6AuNBAGoy3RuXCsctBAg6VBvcqkoQo9Gx")
	// bytes 0x01..0x20
	testTree = solana.MustPublicKeyFromBase58("4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw")
)

func treeOwnerSeeds() [][]byte {
	return [][]byte{[]byte("tree_owner"), testTree.Bytes()}
}

func TestFindProgramAddressKnownVector(t *testing.T) {
	address, bump, err := FindProgramAddress(treeOwnerSeeds(), testProgramID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if address.String() != "AxQTn7E2fLbijnk8Hwfg41e5cMv9ptMjkx155tRHtC8n" {
		t.Fatalf("unexpected address: %s", address)
	}
	if bump != 254 {
		t.Fatalf("unexpected bump: %d", bump)
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	for attempt := 0; attempt < 8; attempt++ {
		tree := solana.NewWallet().PublicKey()
		seeds := [][]byte{[]byte("tree_owner"), tree.Bytes()}

		first, err := Derive(seeds, testProgramID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := Derive(seeds, testProgramID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Fatalf("derivation not deterministic: %+v vs %+v", first, second)
		}

		recreated, err := CreateProgramAddress(first.SignerSeeds(seeds), testProgramID)
		if err != nil {
			t.Fatalf("canonical seeds should recreate the address: %v", err)
		}
		if !recreated.Equals(first.Address) {
			t.Fatalf("recreated %s, derived %s", recreated, first.Address)
		}
	}
}

func TestVerifyProgramAddress(t *testing.T) {
	derivation, err := Derive(treeOwnerSeeds(), testProgramID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := VerifyProgramAddress(treeOwnerSeeds(), derivation.Bump, testProgramID, derivation.Address); err != nil {
		t.Fatalf("canonical derivation should verify: %v", err)
	}

	tests := []struct {
		name     string
		bump     uint8
		expected solana.PublicKey
		want     error
	}{
		{name: "bump plus one", bump: derivation.Bump + 1, expected: derivation.Address, want: ErrNonCanonicalBump},
		{name: "lower off-curve bump", bump: 252, expected: derivation.Address, want: ErrNonCanonicalBump},
		{name: "wrong address", bump: derivation.Bump, expected: testTree, want: ErrAddressMismatch},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := VerifyProgramAddress(treeOwnerSeeds(), testCase.bump, testProgramID, testCase.expected)
			if !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
		})
	}
}

func TestNonCanonicalBumpStillOffCurve(t *testing.T) {
	address, err := CreateProgramAddress(WithBump(treeOwnerSeeds(), 252), testProgramID)
	if err != nil {
		t.Fatalf("bump 252 should produce a valid address: %v", err)
	}
	if address.String() != "4TVm6bsWbPV5eUZ7KyVBfJJpx9o3Zx3Eb8CQ4oc79CbA" {
		t.Fatalf("unexpected address: %s", address)
	}
}

func TestCreateProgramAddressOnCurve(t *testing.T) {
	if _, err := CreateProgramAddress(WithBump(treeOwnerSeeds(), 255), testProgramID); err == nil {
		t.Fatal("bump 255 lands on the curve for this vector and must be rejected")
	}
}

func TestSeedLimits(t *testing.T) {
	long := bytes.Repeat([]byte{1}, MaxSeedLength+1)
	if _, _, err := FindProgramAddress([][]byte{long}, testProgramID); !errors.Is(err, ErrMaxSeedLengthExceeded) {
		t.Fatalf("expected seed length error, got %v", err)
	}

	many := make([][]byte, MaxSeeds)
	for index := range many {
		many[index] = []byte{byte(index)}
	}
	if _, _, err := FindProgramAddress(many, testProgramID); !errors.Is(err, ErrTooManySeeds) {
		t.Fatalf("expected too many seeds error, got %v", err)
	}
	if _, err := CreateProgramAddress(many, testProgramID); errors.Is(err, ErrTooManySeeds) {
		t.Fatalf("sixteen seeds including bump should pass the seed count check: %v", err)
	}
}

func TestWithBumpDoesNotAlias(t *testing.T) {
	seeds := make([][]byte, 1, 4)
	seeds[0] = []byte("a")

	first := WithBump(seeds, 1)
	second := WithBump(seeds, 2)
	if first[1][0] != 1 || second[1][0] != 2 {
		t.Fatalf("bump seeds aliased: %v %v", first, second)
	}
	if len(seeds) != 1 {
		t.Fatalf("input slice modified: %v", seeds)
	}
}
