package knowledgemanager

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/bubblegum"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/ledger"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/pda"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/shared"
	"github.com/rs/zerolog"
)

// Invoker performs a signed cross-program invocation. *ledger.InvokeContext
// satisfies it.
type Invoker interface {
	InvokeSigned(instruction solana.Instruction, accounts []*ledger.AccountInfo, signerSeeds [][][]byte) error
}

type Config struct {
	Programs shared.ProgramConfig
	Logger   zerolog.Logger
}

type Program struct {
	programs shared.ProgramConfig
	logger   zerolog.Logger
}

func NewProgram(config Config) (*Program, error) {
	programs := config.Programs
	for _, required := range []struct {
		name string
		key  solana.PublicKey
	}{
		{name: "program", key: programs.ProgramID},
		{name: "bubblegum program", key: programs.BubblegumProgramID},
		{name: "log wrapper program", key: programs.LogWrapperProgramID},
		{name: "compression program", key: programs.CompressionProgramID},
	} {
		if required.key.IsZero() {
			return nil, fmt.Errorf("%s id is required", required.name)
		}
	}

	return &Program{
		programs: programs,
		logger:   config.Logger.With().Str("component", "knowledge_manager").Logger(),
	}, nil
}

func (p *Program) ProgramID() solana.PublicKey {
	return p.programs.ProgramID
}

// CreateTree asks the Bubblegum program to create the tree config for a bound
// create_tree call, signing as the tree owner. maxDepth and maxBufferSize are
// passed through unchecked.
func (p *Program) CreateTree(invoker Invoker, ctx *CreateTreeContext, args CreateTreeArgs) error {
	accounts := ctx.Accounts
	seeds := TreeOwnerSeeds(accounts.Tree.Key)
	logger := p.logger.With().
		Str("tree", accounts.Tree.Key.String()).
		Str("tree_owner", accounts.TreeOwner.Key.String()).
		Uint8("bump", ctx.Bumps.TreeOwner).
		Logger()

	logger.Debug().Str("status", StatusPending.String()).Msg("creating tree config")

	if err := pda.VerifyProgramAddress(seeds, ctx.Bumps.TreeOwner, ctx.ProgramID, accounts.TreeOwner.Key); err != nil {
		logger.Warn().Str("status", StatusFailed.String()).Err(err).Msg("tree owner authority rejected")
		return authorityMismatchError("tree_owner", err)
	}

	instruction, err := bubblegum.NewCreateTreeConfigInstruction(
		accounts.BubblegumProgram.Key,
		&bubblegum.CreateTreeConfigInstructionAccounts{
			TreeConfig:         accounts.TreeConfig.Key,
			MerkleTree:         accounts.Tree.Key,
			Payer:              accounts.Payer.Key,
			TreeCreator:        accounts.TreeOwner.Key,
			LogWrapper:         accounts.LogWrapper.Key,
			CompressionProgram: accounts.CompressionProgram.Key,
			SystemProgram:      accounts.SystemProgram.Key,
		},
		&bubblegum.CreateTreeConfigInstructionArgs{
			MaxDepth:      args.MaxDepth,
			MaxBufferSize: args.MaxBufferSize,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to build create tree config instruction: %w", err)
	}

	infos := []*ledger.AccountInfo{
		accounts.TreeConfig,
		accounts.Tree,
		accounts.Payer,
		accounts.TreeOwner,
		accounts.LogWrapper,
		accounts.CompressionProgram,
		accounts.SystemProgram,
		accounts.BubblegumProgram,
	}
	signerSeeds := [][][]byte{pda.WithBump(seeds, ctx.Bumps.TreeOwner)}

	if err := invoker.InvokeSigned(instruction, infos, signerSeeds); err != nil {
		logger.Warn().Str("status", StatusFailed.String()).Err(err).Msg("create tree config failed")
		return err
	}

	logger.Info().
		Str("status", StatusCompleted.String()).
		Uint32("max_depth", args.MaxDepth).
		Uint32("max_buffer_size", args.MaxBufferSize).
		Msg("tree config created")
	return nil
}
