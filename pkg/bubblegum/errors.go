package bubblegum

import "errors"

var (
	ErrNotEnoughAccountKeys      = errors.New("not enough account keys")
	ErrTreeConfigAddressMismatch = errors.New("tree config is not the derived address of the merkle tree")
	ErrTreeConfigAlreadyInUse    = errors.New("tree config account already in use")
	ErrMerkleTreeNotZeroed       = errors.New("merkle tree account is not zero initialized")
	ErrIncorrectMerkleTreeOwner  = errors.New("merkle tree account is not owned by the compression program")
	ErrMerkleTreeTooSmall        = errors.New("merkle tree account is too small for the requested shape")
	ErrUnsupportedDepthSizePair  = errors.New("unsupported max depth and max buffer size pair")
	ErrIncorrectProgramID        = errors.New("incorrect program id")
	ErrMissingRequiredSignature  = errors.New("missing required signature")
	ErrAccountNotWritable        = errors.New("account is not writable")
	ErrInsufficientFundsForRent  = errors.New("payer has insufficient funds for rent")
)
