package bubblegum

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var ErrInvalidInstructionData = errors.New("unexpected instruction data")

type CreateTreeConfigInstructionAccounts struct {
	TreeConfig         solana.PublicKey
	MerkleTree         solana.PublicKey
	Payer              solana.PublicKey
	TreeCreator        solana.PublicKey
	LogWrapper         solana.PublicKey
	CompressionProgram solana.PublicKey
	SystemProgram      solana.PublicKey
}

type CreateTreeConfigInstructionArgs struct {
	MaxDepth      uint32
	MaxBufferSize uint32
	// Public is encoded as an optional bool; nil leaves the tree private.
	Public *bool
}

// NewCreateTreeConfigInstruction builds a create_tree instruction for the
// tree-logic program at programID.
func NewCreateTreeConfigInstruction(
	programID solana.PublicKey,
	accounts *CreateTreeConfigInstructionAccounts,
	args *CreateTreeConfigInstructionArgs,
) (*solana.GenericInstruction, error) {
	data, err := EncodeCreateTreeConfigInstructionArgs(args)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(
		programID,
		solana.AccountMetaSlice{
			{PublicKey: accounts.TreeConfig, IsWritable: true, IsSigner: false},
			{PublicKey: accounts.MerkleTree, IsWritable: true, IsSigner: false},
			{PublicKey: accounts.Payer, IsWritable: true, IsSigner: true},
			{PublicKey: accounts.TreeCreator, IsWritable: false, IsSigner: true},
			{PublicKey: accounts.LogWrapper, IsWritable: false, IsSigner: false},
			{PublicKey: accounts.CompressionProgram, IsWritable: false, IsSigner: false},
			{PublicKey: accounts.SystemProgram, IsWritable: false, IsSigner: false},
		},
		data,
	), nil
}

func EncodeCreateTreeConfigInstructionArgs(args *CreateTreeConfigInstructionArgs) ([]byte, error) {
	buffer := bytes.NewBuffer(make([]byte, 0, 8+4+4+2))
	encoder := bin.NewBorshEncoder(buffer)

	if err := encoder.WriteBytes(CreateTreeConfigDiscriminator[:], false); err != nil {
		return nil, err
	}
	if err := encoder.WriteUint32(args.MaxDepth, binary.LittleEndian); err != nil {
		return nil, err
	}
	if err := encoder.WriteUint32(args.MaxBufferSize, binary.LittleEndian); err != nil {
		return nil, err
	}
	if args.Public == nil {
		if err := encoder.WriteUint8(0); err != nil {
			return nil, err
		}
	} else {
		if err := encoder.WriteUint8(1); err != nil {
			return nil, err
		}
		if err := encoder.WriteBool(*args.Public); err != nil {
			return nil, err
		}
	}

	return buffer.Bytes(), nil
}

func DecodeCreateTreeConfigInstructionArgs(data []byte) (CreateTreeConfigInstructionArgs, error) {
	var args CreateTreeConfigInstructionArgs

	if len(data) < 8 || !bytes.Equal(data[:8], CreateTreeConfigDiscriminator[:]) {
		return args, fmt.Errorf("%w: not a create_tree instruction", ErrInvalidInstructionData)
	}

	decoder := bin.NewBorshDecoder(data[8:])
	maxDepth, err := decoder.ReadUint32(binary.LittleEndian)
	if err != nil {
		return args, fmt.Errorf("%w: max_depth: %v", ErrInvalidInstructionData, err)
	}
	maxBufferSize, err := decoder.ReadUint32(binary.LittleEndian)
	if err != nil {
		return args, fmt.Errorf("%w: max_buffer_size: %v", ErrInvalidInstructionData, err)
	}
	args.MaxDepth = maxDepth
	args.MaxBufferSize = maxBufferSize

	// older clients omit the public flag entirely
	if decoder.Remaining() == 0 {
		return args, nil
	}
	present, err := decoder.ReadUint8()
	if err != nil {
		return args, fmt.Errorf("%w: public: %v", ErrInvalidInstructionData, err)
	}
	switch present {
	case 0:
	case 1:
		public, err := decoder.ReadBool()
		if err != nil {
			return args, fmt.Errorf("%w: public: %v", ErrInvalidInstructionData, err)
		}
		args.Public = &public
	default:
		return args, fmt.Errorf("%w: invalid option tag %d", ErrInvalidInstructionData, present)
	}

	if decoder.Remaining() != 0 {
		return args, fmt.Errorf("%w: %d trailing bytes", ErrInvalidInstructionData, decoder.Remaining())
	}
	return args, nil
}
