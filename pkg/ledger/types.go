package ledger

import (
	"bytes"

	"github.com/gagliardetto/solana-go"
)

const (
	// MaxInvokeDepth bounds nested cross-program invocation.
	MaxInvokeDepth = 4

	AccountStorageOverhead = 128
	LamportsPerByteYear    = 3480
	ExemptionThreshold     = 2
)

// Account is the stored state behind an address.
type Account struct {
	Owner      solana.PublicKey
	Lamports   uint64
	Data       []byte
	Executable bool
}

// AccountInfo is an account as seen by one instruction. Views created for
// nested invocations share the same *Account.
type AccountInfo struct {
	Key        solana.PublicKey
	IsSigner   bool
	IsWritable bool
	*Account
}

func NewAccountInfo(key solana.PublicKey, isSigner bool, isWritable bool, account *Account) *AccountInfo {
	if account == nil {
		account = &Account{Owner: solana.SystemProgramID}
	}
	return &AccountInfo{
		Key:        key,
		IsSigner:   isSigner,
		IsWritable: isWritable,
		Account:    account,
	}
}

// NewProgramAccountInfo returns a read-only executable account for programID.
func NewProgramAccountInfo(programID solana.PublicKey) *AccountInfo {
	return NewAccountInfo(programID, false, false, &Account{
		Owner:      solana.BPFLoaderUpgradeableProgramID,
		Lamports:   1,
		Executable: true,
	})
}

// IsZeroed reports whether every data byte is zero. Empty data counts as zeroed.
func (a *AccountInfo) IsZeroed() bool {
	for _, value := range a.Data {
		if value != 0 {
			return false
		}
	}
	return true
}

// IsRentExempt reports whether the balance covers the rent-exempt minimum for
// the current data length.
func (a *AccountInfo) IsRentExempt() bool {
	return a.Lamports >= RentExemptMinimum(len(a.Data))
}

func (a *AccountInfo) view(isSigner bool, isWritable bool) *AccountInfo {
	return &AccountInfo{
		Key:        a.Key,
		IsSigner:   isSigner,
		IsWritable: isWritable,
		Account:    a.Account,
	}
}

// RentExemptMinimum is the balance an account of dataLen bytes needs to be
// exempt from rent.
func RentExemptMinimum(dataLen int) uint64 {
	return uint64(AccountStorageOverhead+dataLen) * LamportsPerByteYear * ExemptionThreshold
}

type accountSnapshot struct {
	account *Account
	state   Account
}

func snapshotAccounts(accounts []*AccountInfo) []accountSnapshot {
	seen := make(map[*Account]struct{}, len(accounts))
	snapshots := make([]accountSnapshot, 0, len(accounts))
	for _, info := range accounts {
		if info == nil || info.Account == nil {
			continue
		}
		if _, exists := seen[info.Account]; exists {
			continue
		}
		seen[info.Account] = struct{}{}

		state := *info.Account
		state.Data = bytes.Clone(info.Data)
		snapshots = append(snapshots, accountSnapshot{account: info.Account, state: state})
	}
	return snapshots
}

func restoreAccounts(snapshots []accountSnapshot) {
	for _, snapshot := range snapshots {
		*snapshot.account = snapshot.state
	}
}
