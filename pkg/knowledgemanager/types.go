package knowledgemanager

import (
	"github.com/gagliardetto/solana-go"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/ledger"
)

// TreeOwnerSeed prefixes the tree address in the tree owner derivation.
const TreeOwnerSeed = "tree_owner"

// sha256("global:create_tree")[:8]
var CreateTreeDiscriminator = [8]byte{165, 83, 136, 142, 89, 202, 47, 220}

type CreateTreeArgs struct {
	MaxDepth      uint32
	MaxBufferSize uint32
}

// CreateTreeAccounts is the bound account surface of create_tree.
type CreateTreeAccounts struct {
	Tree               *ledger.AccountInfo
	TreeConfig         *ledger.AccountInfo
	Payer              *ledger.AccountInfo
	TreeOwner          *ledger.AccountInfo
	BubblegumProgram   *ledger.AccountInfo
	LogWrapper         *ledger.AccountInfo
	CompressionProgram *ledger.AccountInfo
	SystemProgram      *ledger.AccountInfo
}

type CreateTreeBumps struct {
	TreeOwner uint8
}

// CreateTreeContext is what the handler receives once binding succeeds.
type CreateTreeContext struct {
	ProgramID solana.PublicKey
	Accounts  CreateTreeAccounts
	Bumps     CreateTreeBumps
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}
