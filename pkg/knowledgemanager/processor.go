package knowledgemanager

import (
	"bytes"
	"fmt"

	"github.com/knowledge-manager/knowledge-manager-go/pkg/ledger"
)

// Process is the program entrypoint. create_tree is the only instruction.
func (p *Program) Process(ctx *ledger.InvokeContext, accounts []*ledger.AccountInfo, data []byte) error {
	if !ctx.ProgramID().Equals(p.programs.ProgramID) {
		return fmt.Errorf("%w: invoked as %s, configured as %s",
			ErrInvalidInstruction, ctx.ProgramID(), p.programs.ProgramID)
	}
	if len(data) < len(CreateTreeDiscriminator) {
		return invalidInstructionError("instruction data too short")
	}
	if !bytes.Equal(data[:8], CreateTreeDiscriminator[:]) {
		return invalidInstructionError("instruction fallback not found for discriminator %x", data[:8])
	}

	args, err := DecodeCreateTreeArgs(data)
	if err != nil {
		return err
	}
	bound, err := BindCreateTree(p.programs, accounts)
	if err != nil {
		return err
	}
	return p.CreateTree(ctx, bound, args)
}
