package bubblegum

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/ledger"
	"github.com/rs/zerolog"
)

type SimulatorConfig struct {
	LogWrapperProgramID  solana.PublicKey
	CompressionProgramID solana.PublicKey
	Logger               zerolog.Logger
}

// Simulator processes create_tree instructions against ledger accounts.
type Simulator struct {
	logWrapperProgramID  solana.PublicKey
	compressionProgramID solana.PublicKey
	logger               zerolog.Logger
}

func NewSimulator(config SimulatorConfig) *Simulator {
	logWrapper := config.LogWrapperProgramID
	if logWrapper.IsZero() {
		logWrapper = NoopProgramID
	}
	compression := config.CompressionProgramID
	if compression.IsZero() {
		compression = AccountCompressionProgramID
	}

	return &Simulator{
		logWrapperProgramID:  logWrapper,
		compressionProgramID: compression,
		logger:               config.Logger.With().Str("component", "bubblegum_simulator").Logger(),
	}
}

func (s *Simulator) Process(ctx *ledger.InvokeContext, accounts []*ledger.AccountInfo, data []byte) error {
	args, err := DecodeCreateTreeConfigInstructionArgs(data)
	if err != nil {
		return err
	}
	if len(accounts) < 7 {
		return fmt.Errorf("%w: got %d want 7", ErrNotEnoughAccountKeys, len(accounts))
	}

	treeConfig := accounts[0]
	merkleTree := accounts[1]
	payer := accounts[2]
	treeCreator := accounts[3]
	logWrapper := accounts[4]
	compressionProgram := accounts[5]
	systemProgram := accounts[6]

	expectedConfig, _, err := FindTreeConfigAddress(ctx.ProgramID(), merkleTree.Key)
	if err != nil {
		return err
	}
	if !treeConfig.Key.Equals(expectedConfig) {
		return fmt.Errorf("%w: got %s want %s", ErrTreeConfigAddressMismatch, treeConfig.Key, expectedConfig)
	}
	if !treeConfig.Owner.Equals(solana.SystemProgramID) || !treeConfig.IsZeroed() {
		return fmt.Errorf("%w: %s", ErrTreeConfigAlreadyInUse, treeConfig.Key)
	}

	for _, check := range []struct {
		info     *ledger.AccountInfo
		expected solana.PublicKey
	}{
		{info: logWrapper, expected: s.logWrapperProgramID},
		{info: compressionProgram, expected: s.compressionProgramID},
		{info: systemProgram, expected: solana.SystemProgramID},
	} {
		if !check.info.Key.Equals(check.expected) {
			return fmt.Errorf("%w: got %s want %s", ErrIncorrectProgramID, check.info.Key, check.expected)
		}
	}

	if !merkleTree.Owner.Equals(s.compressionProgramID) {
		return fmt.Errorf("%w: owner %s", ErrIncorrectMerkleTreeOwner, merkleTree.Owner)
	}
	if !merkleTree.IsZeroed() {
		return fmt.Errorf("%w: %s", ErrMerkleTreeNotZeroed, merkleTree.Key)
	}
	for _, info := range []*ledger.AccountInfo{treeConfig, merkleTree, payer} {
		if !info.IsWritable {
			return fmt.Errorf("%w: %s", ErrAccountNotWritable, info.Key)
		}
	}
	for _, info := range []*ledger.AccountInfo{payer, treeCreator} {
		if !info.IsSigner {
			return fmt.Errorf("%w: %s", ErrMissingRequiredSignature, info.Key)
		}
	}

	if err := ValidateDepthSizePair(args.MaxDepth, args.MaxBufferSize); err != nil {
		return err
	}
	required := MerkleTreeAccountSize(args.MaxDepth, args.MaxBufferSize, 0)
	if len(merkleTree.Data) < required {
		return fmt.Errorf("%w: got %d bytes want at least %d", ErrMerkleTreeTooSmall, len(merkleTree.Data), required)
	}

	var funding uint64
	if rent := ledger.RentExemptMinimum(TreeConfigSize); treeConfig.Lamports < rent {
		funding = rent - treeConfig.Lamports
	}
	if payer.Lamports < funding {
		return fmt.Errorf("%w: need %d lamports, have %d", ErrInsufficientFundsForRent, funding, payer.Lamports)
	}

	isPublic := args.Public != nil && *args.Public
	configData, err := TreeConfig{
		TreeCreator:       treeCreator.Key,
		TreeDelegate:      treeCreator.Key,
		TotalMintCapacity: 1 << args.MaxDepth,
		IsPublic:          isPublic,
		IsDecompressible:  DecompressibleDisabled,
	}.MarshalBinary()
	if err != nil {
		return err
	}

	payer.Lamports -= funding
	treeConfig.Lamports += funding
	treeConfig.Data = configData
	treeConfig.Owner = ctx.ProgramID()
	writeMerkleTreeHeader(merkleTree.Data, args, treeConfig.Key)

	s.logger.Debug().
		Str("merkle_tree", merkleTree.Key.String()).
		Str("tree_config", treeConfig.Key.String()).
		Uint32("max_depth", args.MaxDepth).
		Uint32("max_buffer_size", args.MaxBufferSize).
		Msg("tree config created")
	return nil
}

func writeMerkleTreeHeader(data []byte, args CreateTreeConfigInstructionArgs, authority solana.PublicKey) {
	data[0] = accountTypeConcurrentMerkleTree
	data[1] = headerVersionV1
	binary.LittleEndian.PutUint32(data[2:6], args.MaxBufferSize)
	binary.LittleEndian.PutUint32(data[6:10], args.MaxDepth)
	copy(data[10:42], authority.Bytes())
}
