package bubblegum

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/knowledge-manager/knowledge-manager-go/pkg/pda"
)

const (
	// account type byte and header version byte, then the V1 header body
	MerkleTreeHeaderSize = 2 + 54
	merkleTreeFixedSize  = 3 * 8

	accountTypeConcurrentMerkleTree = 1
	headerVersionV1                 = 0
)

// depth -> supported buffer sizes of the concurrent merkle tree
var supportedDepthSizePairs = map[uint32][]uint32{
	3:  {8},
	5:  {8},
	6:  {16},
	7:  {16},
	8:  {16},
	9:  {16},
	10: {32},
	11: {32},
	12: {32},
	13: {32},
	14: {64, 256, 1024, 2048},
	15: {64},
	16: {64},
	17: {64},
	18: {64},
	19: {64},
	20: {64, 256, 1024, 2048},
	24: {64, 256, 512, 1024, 2048},
	26: {512, 1024, 2048},
	30: {512, 1024, 2048},
}

// FindTreeConfigAddress returns the tree config address for merkleTree under
// the tree-logic program.
func FindTreeConfigAddress(programID solana.PublicKey, merkleTree solana.PublicKey) (solana.PublicKey, uint8, error) {
	return pda.FindProgramAddress([][]byte{merkleTree.Bytes()}, programID)
}

func ValidateDepthSizePair(maxDepth uint32, maxBufferSize uint32) error {
	for _, size := range supportedDepthSizePairs[maxDepth] {
		if size == maxBufferSize {
			return nil
		}
	}
	return fmt.Errorf("%w: max_depth=%d max_buffer_size=%d", ErrUnsupportedDepthSizePair, maxDepth, maxBufferSize)
}

// MerkleTreeAccountSize is the data length a merkle tree account needs for
// the given shape.
func MerkleTreeAccountSize(maxDepth uint32, maxBufferSize uint32, canopyDepth uint32) int {
	changeLogSize := 32 + 32*int(maxDepth) + 4 + 4
	rightmostPathSize := 32*int(maxDepth) + 32 + 4 + 4
	treeSize := merkleTreeFixedSize + int(maxBufferSize)*changeLogSize + rightmostPathSize

	canopySize := 0
	if canopyDepth > 0 {
		canopySize = ((1 << (canopyDepth + 1)) - 2) * 32
	}

	return MerkleTreeHeaderSize + treeSize + canopySize
}
