package bubblegum

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestDiscriminators(t *testing.T) {
	instruction := sha256.Sum256([]byte("global:create_tree"))
	if !bytes.Equal(instruction[:8], CreateTreeConfigDiscriminator[:]) {
		t.Fatalf("create_tree discriminator mismatch: %v", instruction[:8])
	}
	account := sha256.Sum256([]byte("account:TreeConfig"))
	if !bytes.Equal(account[:8], TreeConfigDiscriminator[:]) {
		t.Fatalf("TreeConfig discriminator mismatch: %v", account[:8])
	}
}

func TestNewCreateTreeConfigInstruction(t *testing.T) {
	accounts := &CreateTreeConfigInstructionAccounts{
		TreeConfig:         solana.NewWallet().PublicKey(),
		MerkleTree:         solana.NewWallet().PublicKey(),
		Payer:              solana.NewWallet().PublicKey(),
		TreeCreator:        solana.NewWallet().PublicKey(),
		LogWrapper:         NoopProgramID,
		CompressionProgram: AccountCompressionProgramID,
		SystemProgram:      solana.SystemProgramID,
	}

	instruction, err := NewCreateTreeConfigInstruction(ProgramID, accounts, &CreateTreeConfigInstructionArgs{
		MaxDepth:      14,
		MaxBufferSize: 64,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !instruction.ProgramID().Equals(ProgramID) {
		t.Fatalf("unexpected program id: %s", instruction.ProgramID())
	}

	data, err := instruction.Data()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{165, 83, 136, 142, 89, 202, 47, 220, 14, 0, 0, 0, 64, 0, 0, 0, 0}
	if !bytes.Equal(data, want) {
		t.Fatalf("unexpected data:\n got %v\nwant %v", data, want)
	}

	expected := []solana.AccountMeta{
		{PublicKey: accounts.TreeConfig, IsWritable: true},
		{PublicKey: accounts.MerkleTree, IsWritable: true},
		{PublicKey: accounts.Payer, IsWritable: true, IsSigner: true},
		{PublicKey: accounts.TreeCreator, IsSigner: true},
		{PublicKey: NoopProgramID},
		{PublicKey: AccountCompressionProgramID},
		{PublicKey: solana.SystemProgramID},
	}
	metas := instruction.Accounts()
	if len(metas) != len(expected) {
		t.Fatalf("expected %d accounts, got %d", len(expected), len(metas))
	}
	for index, meta := range metas {
		if *meta != expected[index] {
			t.Fatalf("account %d: got %+v want %+v", index, *meta, expected[index])
		}
	}
}

func TestDecodeCreateTreeConfigInstructionArgs(t *testing.T) {
	public := true
	data, err := EncodeCreateTreeConfigInstructionArgs(&CreateTreeConfigInstructionArgs{
		MaxDepth:      20,
		MaxBufferSize: 256,
		Public:        &public,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	args, err := DecodeCreateTreeConfigInstructionArgs(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args.MaxDepth != 20 || args.MaxBufferSize != 256 || args.Public == nil || !*args.Public {
		t.Fatalf("unexpected args: %+v", args)
	}

	legacy := append(append([]byte{}, CreateTreeConfigDiscriminator[:]...), 3, 0, 0, 0, 8, 0, 0, 0)
	args, err = DecodeCreateTreeConfigInstructionArgs(legacy)
	if err != nil {
		t.Fatalf("unexpected error for payload without public flag: %v", err)
	}
	if args.Public != nil {
		t.Fatalf("expected nil public flag, got %v", *args.Public)
	}
}

func TestDecodeCreateTreeConfigInstructionArgsInvalid(t *testing.T) {
	valid, err := EncodeCreateTreeConfigInstructionArgs(&CreateTreeConfigInstructionArgs{MaxDepth: 3, MaxBufferSize: 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string][]byte{
		"empty":               nil,
		"wrong discriminator": append([]byte{0, 0, 0, 0, 0, 0, 0, 0}, valid[8:]...),
		"truncated":           valid[:10],
		"bad option tag":      append(append([]byte{}, valid[:16]...), 2),
		"trailing bytes":      append(append([]byte{}, valid...), 9),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeCreateTreeConfigInstructionArgs(data)
			if !errors.Is(err, ErrInvalidInstructionData) {
				t.Fatalf("expected invalid instruction data, got %v", err)
			}
		})
	}
}

func TestTreeConfigEncoding(t *testing.T) {
	config := TreeConfig{
		TreeCreator:       solana.NewWallet().PublicKey(),
		TreeDelegate:      solana.NewWallet().PublicKey(),
		TotalMintCapacity: 1 << 14,
		NumMinted:         3,
		IsPublic:          true,
		IsDecompressible:  DecompressibleDisabled,
	}

	data, err := config.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != TreeConfigSize {
		t.Fatalf("expected %d bytes, got %d", TreeConfigSize, len(data))
	}

	decoded, err := DecodeTreeConfig(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != config {
		t.Fatalf("decoded config mismatch: %+v vs %+v", decoded, config)
	}

	if _, err := DecodeTreeConfig(make([]byte, TreeConfigSize)); err == nil {
		t.Fatal("expected zeroed data to be rejected")
	}
}
