package knowledgemanager

import (
	"github.com/gagliardetto/solana-go"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/bubblegum"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/ledger"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/pda"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/shared"
)

const createTreeAccountCount = 8

// TreeOwnerSeeds returns the tree owner seeds without the bump.
func TreeOwnerSeeds(tree solana.PublicKey) [][]byte {
	return [][]byte{[]byte(TreeOwnerSeed), tree.Bytes()}
}

func FindTreeOwnerAddress(programID solana.PublicKey, tree solana.PublicKey) (solana.PublicKey, uint8, error) {
	return pda.FindProgramAddress(TreeOwnerSeeds(tree), programID)
}

// BindCreateTree validates the accounts of a create_tree call, in
// instruction order, and derives the tree owner bump. It reads accounts only.
func BindCreateTree(programs shared.ProgramConfig, accounts []*ledger.AccountInfo) (*CreateTreeContext, error) {
	if len(accounts) < createTreeAccountCount {
		return nil, accountShapeError("", "not enough account keys: got %d want %d", len(accounts), createTreeAccountCount)
	}

	bound := CreateTreeAccounts{
		Tree:               accounts[0],
		TreeConfig:         accounts[1],
		Payer:              accounts[2],
		TreeOwner:          accounts[3],
		BubblegumProgram:   accounts[4],
		LogWrapper:         accounts[5],
		CompressionProgram: accounts[6],
		SystemProgram:      accounts[7],
	}

	if err := checkTree(programs, bound.Tree); err != nil {
		return nil, err
	}
	if err := checkTreeConfig(programs, bound.TreeConfig, bound.Tree.Key); err != nil {
		return nil, err
	}

	if !bound.Payer.IsSigner {
		return nil, accountShapeError("payer", "must sign")
	}
	if !bound.Payer.IsWritable {
		return nil, accountShapeError("payer", "must be writable")
	}

	treeOwner, err := pda.Derive(TreeOwnerSeeds(bound.Tree.Key), programs.ProgramID)
	if err != nil {
		return nil, authorityMismatchError("tree_owner", err)
	}
	if !bound.TreeOwner.Key.Equals(treeOwner.Address) {
		return nil, authorityMismatchError("tree_owner", pda.ErrAddressMismatch)
	}

	for _, check := range []struct {
		name     string
		info     *ledger.AccountInfo
		expected solana.PublicKey
	}{
		{name: "mpl_bubblegum_program", info: bound.BubblegumProgram, expected: programs.BubblegumProgramID},
		{name: "log_wrapper", info: bound.LogWrapper, expected: programs.LogWrapperProgramID},
		{name: "compression_program", info: bound.CompressionProgram, expected: programs.CompressionProgramID},
		{name: "system_program", info: bound.SystemProgram, expected: solana.SystemProgramID},
	} {
		if !check.info.Key.Equals(check.expected) {
			return nil, accountShapeError(check.name, "program id %s does not match %s", check.info.Key, check.expected)
		}
		if !check.info.Executable {
			return nil, accountShapeError(check.name, "program account is not executable")
		}
	}

	return &CreateTreeContext{
		ProgramID: programs.ProgramID,
		Accounts:  bound,
		Bumps:     CreateTreeBumps{TreeOwner: treeOwner.Bump},
	}, nil
}

func checkTree(programs shared.ProgramConfig, tree *ledger.AccountInfo) error {
	if !tree.IsWritable {
		return accountShapeError("tree", "must be writable")
	}
	if !tree.Owner.Equals(programs.CompressionProgramID) {
		return accountShapeError("tree", "owned by %s, want %s", tree.Owner, programs.CompressionProgramID)
	}
	if len(tree.Data) == 0 {
		return accountShapeError("tree", "account has no allocated data")
	}
	if !tree.IsZeroed() {
		return accountShapeError("tree", "account is already initialized")
	}
	if !tree.IsRentExempt() {
		return accountShapeError("tree", "balance %d is below the rent-exempt minimum %d",
			tree.Lamports, ledger.RentExemptMinimum(len(tree.Data)))
	}
	return nil
}

func checkTreeConfig(programs shared.ProgramConfig, treeConfig *ledger.AccountInfo, tree solana.PublicKey) error {
	if !treeConfig.IsWritable {
		return accountShapeError("tree_config", "must be writable")
	}
	if !treeConfig.Owner.Equals(solana.SystemProgramID) || !treeConfig.IsZeroed() {
		return accountShapeError("tree_config", "account is already initialized")
	}

	expected, _, err := bubblegum.FindTreeConfigAddress(programs.BubblegumProgramID, tree)
	if err != nil {
		return accountShapeError("tree_config", "cannot derive tree config address: %v", err)
	}
	if !treeConfig.Key.Equals(expected) {
		return accountShapeError("tree_config", "address %s is not the tree config of %s", treeConfig.Key, tree)
	}
	return nil
}
