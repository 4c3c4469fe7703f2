package knowledgemanager

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorCodeAccountShape                ErrorCode = "account_shape"
	ErrorCodeAuthorityDerivationMismatch ErrorCode = "authority_derivation_mismatch"
	ErrorCodeInvalidInstruction          ErrorCode = "invalid_instruction"
)

var (
	ErrAccountShape                = errors.New("account shape error")
	ErrAuthorityDerivationMismatch = errors.New("authority derivation mismatch")
	ErrInvalidInstruction          = errors.New("invalid instruction")
)

// AccountError reports a request rejected before any invocation was attempted.
type AccountError struct {
	Code    ErrorCode
	Account string
	Message string
	Err     error
}

func (e *AccountError) Error() string {
	if e.Account == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Account, e.Message)
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func (e *AccountError) Is(target error) bool {
	switch target {
	case ErrAccountShape:
		return e.Code == ErrorCodeAccountShape
	case ErrAuthorityDerivationMismatch:
		return e.Code == ErrorCodeAuthorityDerivationMismatch
	case ErrInvalidInstruction:
		return e.Code == ErrorCodeInvalidInstruction
	}
	return false
}

func accountShapeError(account string, format string, args ...any) *AccountError {
	return &AccountError{
		Code:    ErrorCodeAccountShape,
		Account: account,
		Message: fmt.Sprintf(format, args...),
	}
}

func authorityMismatchError(account string, err error) *AccountError {
	return &AccountError{
		Code:    ErrorCodeAuthorityDerivationMismatch,
		Account: account,
		Message: err.Error(),
		Err:     err,
	}
}

func invalidInstructionError(format string, args ...any) *AccountError {
	return &AccountError{
		Code:    ErrorCodeInvalidInstruction,
		Message: fmt.Sprintf(format, args...),
	}
}
