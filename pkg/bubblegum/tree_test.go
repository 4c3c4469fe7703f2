package bubblegum

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestMerkleTreeAccountSize(t *testing.T) {
	tests := []struct {
		depth, buffer, canopy uint32
		want                  int
	}{
		{depth: 14, buffer: 64, want: 31800},
		{depth: 3, buffer: 8, want: 1304},
		{depth: 14, buffer: 64, canopy: 2, want: 31800 + 6*32},
	}
	for _, testCase := range tests {
		got := MerkleTreeAccountSize(testCase.depth, testCase.buffer, testCase.canopy)
		if got != testCase.want {
			t.Fatalf("size(%d,%d,%d) = %d, want %d", testCase.depth, testCase.buffer, testCase.canopy, got, testCase.want)
		}
	}
}

func TestValidateDepthSizePair(t *testing.T) {
	if err := ValidateDepthSizePair(14, 64); err != nil {
		t.Fatalf("14/64 should be supported: %v", err)
	}
	if err := ValidateDepthSizePair(30, 2048); err != nil {
		t.Fatalf("30/2048 should be supported: %v", err)
	}
	for _, pair := range [][2]uint32{{14, 65}, {4, 8}, {0, 0}, {31, 2048}} {
		if err := ValidateDepthSizePair(pair[0], pair[1]); !errors.Is(err, ErrUnsupportedDepthSizePair) {
			t.Fatalf("expected %v to be rejected, got %v", pair, err)
		}
	}
}

func TestFindTreeConfigAddress(t *testing.T) {
	tree := solana.MustPublicKeyFromBase58("4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw")
	address, bump, err := FindTreeConfigAddress(ProgramID, tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if address.String() != "DyibBFHTpAeBhqT6JWVMU9kdzP9yTFdntKHEDPhDMc4i" || bump != 255 {
		t.Fatalf("unexpected tree config %s bump %d", address, bump)
	}
}
