package ledger

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrUnknownProgram       = errors.New("unknown program")
	ErrProgramNotExecutable = errors.New("program account is not executable")
	ErrMissingAccount       = errors.New("instruction references an account that was not supplied")
	ErrPrivilegeEscalation  = errors.New("cross-program invocation with unauthorized signer or writable account")
	ErrMissingSignature     = errors.New("missing required signature")
	ErrReadonlyAccount      = errors.New("instruction requires a writable account supplied as read-only")
	ErrInvalidSignerSeeds   = errors.New("signer seeds do not produce a valid program address")
	ErrCallDepthExceeded    = errors.New("cross-program invocation call depth too deep")
)

// ProgramError is a failure returned by a program's processor.
type ProgramError struct {
	ProgramID solana.PublicKey
	Err       error
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("program %s failed: %v", e.ProgramID, e.Err)
}

func (e *ProgramError) Unwrap() error {
	return e.Err
}
