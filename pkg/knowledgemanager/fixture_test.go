package knowledgemanager

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/bubblegum"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/ledger"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/shared"
)

const payerLamports = 10_000_000_000

type fixture struct {
	programs   shared.ProgramConfig
	keys       CreateTreeInstructionAccounts
	tree       *ledger.AccountInfo
	treeConfig *ledger.AccountInfo
	payer      *ledger.AccountInfo
	treeOwner  *ledger.AccountInfo
	accounts   []*ledger.AccountInfo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithTree(t, solana.NewWallet().PublicKey(), bubblegum.MerkleTreeAccountSize(14, 64, 0))
}

func newFixtureWithTree(t *testing.T, treeKey solana.PublicKey, treeSize int) *fixture {
	t.Helper()

	programs := shared.DefaultProgramConfig()
	payerKey := solana.NewWallet().PublicKey()
	keys, err := DeriveCreateTreeInstructionAccounts(programs, treeKey, payerKey)
	if err != nil {
		t.Fatalf("failed to derive accounts: %v", err)
	}

	f := &fixture{
		programs: programs,
		keys:     keys,
		tree: ledger.NewAccountInfo(treeKey, false, true, &ledger.Account{
			Owner:    programs.CompressionProgramID,
			Lamports: ledger.RentExemptMinimum(treeSize),
			Data:     make([]byte, treeSize),
		}),
		treeConfig: ledger.NewAccountInfo(keys.TreeConfig, false, true, nil),
		payer:      ledger.NewAccountInfo(payerKey, true, true, &ledger.Account{Lamports: payerLamports}),
		treeOwner:  ledger.NewAccountInfo(keys.TreeOwner, false, false, nil),
	}
	f.accounts = []*ledger.AccountInfo{
		f.tree,
		f.treeConfig,
		f.payer,
		f.treeOwner,
		ledger.NewProgramAccountInfo(programs.BubblegumProgramID),
		ledger.NewProgramAccountInfo(programs.LogWrapperProgramID),
		ledger.NewProgramAccountInfo(programs.CompressionProgramID),
		ledger.NewProgramAccountInfo(solana.SystemProgramID),
	}
	return f
}

type accountState struct {
	treeData   []byte
	configData []byte
	treeOwner  solana.PublicKey
	payer      uint64
}

func (f *fixture) state() accountState {
	return accountState{
		treeData:   bytes.Clone(f.tree.Data),
		configData: bytes.Clone(f.treeConfig.Data),
		treeOwner:  f.tree.Owner,
		payer:      f.payer.Lamports,
	}
}

func (f *fixture) assertUnchanged(t *testing.T, before accountState) {
	t.Helper()
	after := f.state()
	if !bytes.Equal(before.treeData, after.treeData) {
		t.Fatal("tree data changed")
	}
	if !bytes.Equal(before.configData, after.configData) {
		t.Fatal("tree config data changed")
	}
	if before.treeOwner != after.treeOwner || before.payer != after.payer {
		t.Fatalf("account metadata changed: %+v -> %+v", before, after)
	}
}

type invocation struct {
	instruction solana.Instruction
	accounts    []*ledger.AccountInfo
	signerSeeds [][][]byte
}

type recordingInvoker struct {
	calls []invocation
	err   error
}

func (r *recordingInvoker) InvokeSigned(
	instruction solana.Instruction,
	accounts []*ledger.AccountInfo,
	signerSeeds [][][]byte,
) error {
	r.calls = append(r.calls, invocation{
		instruction: instruction,
		accounts:    accounts,
		signerSeeds: signerSeeds,
	})
	return r.err
}
