package ledger

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
)

// Processor is a program's entrypoint.
type Processor interface {
	Process(ctx *InvokeContext, accounts []*AccountInfo, data []byte) error
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *InvokeContext, accounts []*AccountInfo, data []byte) error

func (f ProcessorFunc) Process(ctx *InvokeContext, accounts []*AccountInfo, data []byte) error {
	return f(ctx, accounts, data)
}

type Config struct {
	Logger zerolog.Logger
}

// Runtime executes instructions against registered programs. It is not safe
// for concurrent use; callers hold the accounts they pass for the duration
// of Execute.
type Runtime struct {
	programs map[solana.PublicKey]Processor
	logger   zerolog.Logger
}

func NewRuntime(config Config) *Runtime {
	return &Runtime{
		programs: make(map[solana.PublicKey]Processor),
		logger:   config.Logger.With().Str("component", "ledger_runtime").Logger(),
	}
}

func (r *Runtime) Register(programID solana.PublicKey, processor Processor) {
	r.programs[programID] = processor
}

// Execute runs a top-level instruction. Every account the instruction marks
// as a signer must be supplied with IsSigner set, and likewise for writable.
// On failure all supplied accounts are restored.
func (r *Runtime) Execute(instruction solana.Instruction, accounts []*AccountInfo) error {
	snapshots := snapshotAccounts(accounts)

	err := r.dispatch(instruction, accounts, nil, 0)
	if err != nil {
		restoreAccounts(snapshots)
		r.logger.Debug().
			Str("program", instruction.ProgramID().String()).
			Err(err).
			Msg("instruction failed; accounts restored")
		return err
	}
	return nil
}

// InvokeContext is handed to a processor for the duration of one instruction.
type InvokeContext struct {
	runtime   *Runtime
	programID solana.PublicKey
	depth     int
}

func (c *InvokeContext) ProgramID() solana.PublicKey {
	return c.programID
}

// Depth is 1 for a top-level instruction.
func (c *InvokeContext) Depth() int {
	return c.depth
}

func (c *InvokeContext) Logger() zerolog.Logger {
	return c.runtime.logger
}

// InvokeSigned calls another program. Each entry of signerSeeds is a full
// seed set, bump included, for an address derived from the calling program;
// accounts at those addresses are treated as signers for the callee.
func (c *InvokeContext) InvokeSigned(
	instruction solana.Instruction,
	accounts []*AccountInfo,
	signerSeeds [][][]byte,
) error {
	if c.depth >= MaxInvokeDepth {
		return ErrCallDepthExceeded
	}

	signers := make(map[solana.PublicKey]struct{}, len(signerSeeds))
	for _, seeds := range signerSeeds {
		address, err := solana.CreateProgramAddress(seeds, c.programID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignerSeeds, err)
		}
		signers[address] = struct{}{}
	}

	programID := instruction.ProgramID()
	programAccount := findAccount(accounts, programID)
	if programAccount == nil {
		return fmt.Errorf("%w: program %s", ErrMissingAccount, programID)
	}
	if !programAccount.Executable {
		return fmt.Errorf("%w: %s", ErrProgramNotExecutable, programID)
	}

	return c.runtime.dispatch(instruction, accounts, signers, c.depth)
}

func (r *Runtime) dispatch(
	instruction solana.Instruction,
	available []*AccountInfo,
	pdaSigners map[solana.PublicKey]struct{},
	callerDepth int,
) error {
	programID := instruction.ProgramID()
	processor, ok := r.programs[programID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProgram, programID)
	}

	data, err := instruction.Data()
	if err != nil {
		return fmt.Errorf("failed to encode instruction data: %w", err)
	}

	nested := callerDepth > 0
	metas := instruction.Accounts()
	views := make([]*AccountInfo, 0, len(metas))
	for _, meta := range metas {
		info := findAccount(available, meta.PublicKey)
		if info == nil {
			return fmt.Errorf("%w: %s", ErrMissingAccount, meta.PublicKey)
		}

		if meta.IsSigner && !info.IsSigner {
			if _, derived := pdaSigners[meta.PublicKey]; !derived {
				if nested {
					return fmt.Errorf("%w: %s must sign", ErrPrivilegeEscalation, meta.PublicKey)
				}
				return fmt.Errorf("%w: %s", ErrMissingSignature, meta.PublicKey)
			}
		}
		if meta.IsWritable && !info.IsWritable {
			if nested {
				return fmt.Errorf("%w: %s must be writable", ErrPrivilegeEscalation, meta.PublicKey)
			}
			return fmt.Errorf("%w: %s", ErrReadonlyAccount, meta.PublicKey)
		}

		views = append(views, info.view(meta.IsSigner, meta.IsWritable))
	}

	ctx := &InvokeContext{
		runtime:   r,
		programID: programID,
		depth:     callerDepth + 1,
	}
	r.logger.Debug().
		Str("program", programID.String()).
		Int("depth", ctx.depth).
		Int("accounts", len(views)).
		Msg("invoking program")

	if err := processor.Process(ctx, views, data); err != nil {
		return &ProgramError{ProgramID: programID, Err: err}
	}
	return nil
}

func findAccount(accounts []*AccountInfo, key solana.PublicKey) *AccountInfo {
	for _, info := range accounts {
		if info != nil && info.Key.Equals(key) {
			return info
		}
	}
	return nil
}
