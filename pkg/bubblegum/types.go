package bubblegum

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	ProgramID                   = solana.MustPublicKeyFromBase58("BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDfK752saRPUY")
	NoopProgramID               = solana.MustPublicKeyFromBase58("noopb9bkMVfRPU8AsbpTUg8AQkHtKwMYZiFUjNRtMmV")
	AccountCompressionProgramID = solana.MustPublicKeyFromBase58("cmtDvXumGCrqC1Age74AVPhSRVXJMd8PJS91L8KbNCK")
)

var (
	// sha256("global:create_tree")[:8]
	CreateTreeConfigDiscriminator = [8]byte{165, 83, 136, 142, 89, 202, 47, 220}
	// sha256("account:TreeConfig")[:8]
	TreeConfigDiscriminator = [8]byte{122, 245, 175, 248, 171, 34, 0, 207}
)

const TreeConfigSize = 8 + 32 + 32 + 8 + 8 + 1 + 1

type DecompressibleState uint8

const (
	DecompressibleEnabled  DecompressibleState = 0
	DecompressibleDisabled DecompressibleState = 1
)

// TreeConfig is the account Bubblegum keeps per merkle tree.
type TreeConfig struct {
	TreeCreator       solana.PublicKey
	TreeDelegate      solana.PublicKey
	TotalMintCapacity uint64
	NumMinted         uint64
	IsPublic          bool
	IsDecompressible  DecompressibleState
}

func (c TreeConfig) MarshalBinary() ([]byte, error) {
	buffer := bytes.NewBuffer(make([]byte, 0, TreeConfigSize))
	encoder := bin.NewBorshEncoder(buffer)

	if err := encoder.WriteBytes(TreeConfigDiscriminator[:], false); err != nil {
		return nil, err
	}
	if err := encoder.WriteBytes(c.TreeCreator.Bytes(), false); err != nil {
		return nil, err
	}
	if err := encoder.WriteBytes(c.TreeDelegate.Bytes(), false); err != nil {
		return nil, err
	}
	if err := encoder.WriteUint64(c.TotalMintCapacity, binary.LittleEndian); err != nil {
		return nil, err
	}
	if err := encoder.WriteUint64(c.NumMinted, binary.LittleEndian); err != nil {
		return nil, err
	}
	if err := encoder.WriteBool(c.IsPublic); err != nil {
		return nil, err
	}
	if err := encoder.WriteUint8(uint8(c.IsDecompressible)); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// DecodeTreeConfig parses tree config account data.
func DecodeTreeConfig(data []byte) (TreeConfig, error) {
	var config TreeConfig
	if len(data) < TreeConfigSize {
		return config, fmt.Errorf("tree config data is %d bytes, need %d", len(data), TreeConfigSize)
	}

	decoder := bin.NewBorshDecoder(data)
	discriminator, err := decoder.ReadNBytes(8)
	if err != nil {
		return config, err
	}
	if !bytes.Equal(discriminator, TreeConfigDiscriminator[:]) {
		return config, fmt.Errorf("account is not a tree config")
	}

	creator, err := decoder.ReadNBytes(solana.PublicKeyLength)
	if err != nil {
		return config, err
	}
	delegate, err := decoder.ReadNBytes(solana.PublicKeyLength)
	if err != nil {
		return config, err
	}
	config.TreeCreator = solana.PublicKeyFromBytes(creator)
	config.TreeDelegate = solana.PublicKeyFromBytes(delegate)

	if config.TotalMintCapacity, err = decoder.ReadUint64(binary.LittleEndian); err != nil {
		return config, err
	}
	if config.NumMinted, err = decoder.ReadUint64(binary.LittleEndian); err != nil {
		return config, err
	}
	if config.IsPublic, err = decoder.ReadBool(); err != nil {
		return config, err
	}
	state, err := decoder.ReadUint8()
	if err != nil {
		return config, err
	}
	config.IsDecompressible = DecompressibleState(state)

	return config, nil
}
