package knowledgemanager

import (
	"bytes"
	"encoding/binary"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/bubblegum"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/shared"
)

const createTreeArgsSize = 8 + 4 + 4

// CreateTreeInstructionAccounts lists the addresses of a create_tree call.
type CreateTreeInstructionAccounts struct {
	Tree               solana.PublicKey
	TreeConfig         solana.PublicKey
	Payer              solana.PublicKey
	TreeOwner          solana.PublicKey
	BubblegumProgram   solana.PublicKey
	LogWrapper         solana.PublicKey
	CompressionProgram solana.PublicKey
	SystemProgram      solana.PublicKey
}

// DeriveCreateTreeInstructionAccounts fills in the derived tree config and
// tree owner addresses for tree.
func DeriveCreateTreeInstructionAccounts(
	programs shared.ProgramConfig,
	tree solana.PublicKey,
	payer solana.PublicKey,
) (CreateTreeInstructionAccounts, error) {
	treeConfig, _, err := bubblegum.FindTreeConfigAddress(programs.BubblegumProgramID, tree)
	if err != nil {
		return CreateTreeInstructionAccounts{}, err
	}
	treeOwner, _, err := FindTreeOwnerAddress(programs.ProgramID, tree)
	if err != nil {
		return CreateTreeInstructionAccounts{}, err
	}

	return CreateTreeInstructionAccounts{
		Tree:               tree,
		TreeConfig:         treeConfig,
		Payer:              payer,
		TreeOwner:          treeOwner,
		BubblegumProgram:   programs.BubblegumProgramID,
		LogWrapper:         programs.LogWrapperProgramID,
		CompressionProgram: programs.CompressionProgramID,
		SystemProgram:      solana.SystemProgramID,
	}, nil
}

func NewCreateTreeInstruction(
	programID solana.PublicKey,
	accounts *CreateTreeInstructionAccounts,
	args CreateTreeArgs,
) (*solana.GenericInstruction, error) {
	data, err := EncodeCreateTreeArgs(args)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(
		programID,
		solana.AccountMetaSlice{
			{PublicKey: accounts.Tree, IsWritable: true, IsSigner: false},
			{PublicKey: accounts.TreeConfig, IsWritable: true, IsSigner: false},
			{PublicKey: accounts.Payer, IsWritable: true, IsSigner: true},
			{PublicKey: accounts.TreeOwner, IsWritable: false, IsSigner: false},
			{PublicKey: accounts.BubblegumProgram, IsWritable: false, IsSigner: false},
			{PublicKey: accounts.LogWrapper, IsWritable: false, IsSigner: false},
			{PublicKey: accounts.CompressionProgram, IsWritable: false, IsSigner: false},
			{PublicKey: accounts.SystemProgram, IsWritable: false, IsSigner: false},
		},
		data,
	), nil
}

func EncodeCreateTreeArgs(args CreateTreeArgs) ([]byte, error) {
	buffer := bytes.NewBuffer(make([]byte, 0, createTreeArgsSize))
	encoder := bin.NewBorshEncoder(buffer)

	if err := encoder.WriteBytes(CreateTreeDiscriminator[:], false); err != nil {
		return nil, err
	}
	if err := encoder.WriteUint32(args.MaxDepth, binary.LittleEndian); err != nil {
		return nil, err
	}
	if err := encoder.WriteUint32(args.MaxBufferSize, binary.LittleEndian); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func DecodeCreateTreeArgs(data []byte) (CreateTreeArgs, error) {
	if len(data) != createTreeArgsSize {
		return CreateTreeArgs{}, invalidInstructionError("create_tree data is %d bytes, want %d", len(data), createTreeArgsSize)
	}
	if !bytes.Equal(data[:8], CreateTreeDiscriminator[:]) {
		return CreateTreeArgs{}, invalidInstructionError("unknown instruction discriminator %x", data[:8])
	}

	decoder := bin.NewBorshDecoder(data[8:])
	maxDepth, err := decoder.ReadUint32(binary.LittleEndian)
	if err != nil {
		return CreateTreeArgs{}, invalidInstructionError("max_depth: %v", err)
	}
	maxBufferSize, err := decoder.ReadUint32(binary.LittleEndian)
	if err != nil {
		return CreateTreeArgs{}, invalidInstructionError("max_buffer_size: %v", err)
	}

	return CreateTreeArgs{MaxDepth: maxDepth, MaxBufferSize: maxBufferSize}, nil
}
