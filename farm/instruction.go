package farm

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/deltafi-labs/deltafi-go/layout"
	"github.com/deltafi-labs/deltafi-go/program"
)

// Farm program instruction tags. The farm program has its own dispatch
// namespace, separate from the swap program's.
const (
	TagInitializeFarm        uint8 = 0
	TagFarmDeposit           uint8 = 1
	TagFarmWithdraw          uint8 = 2
	TagFarmEmergencyWithdraw uint8 = 3
)

// InitializeFarmAccounts are the accounts touched by the farm initialize
// instruction, in positional order.
type InitializeFarmAccounts struct {
	Config      solana.PublicKey
	Farm        solana.PublicKey
	Authority   solana.PublicKey
	PoolMint    solana.PublicKey
	AdminFeeKey solana.PublicKey
	Admin       solana.PublicKey
}

// NewInitializeFarmInstruction builds the farm initialize instruction for a
// current-shape farm account. The legacy shape cannot be initialized through
// this layer; passing StateVersionV1 fails with the unsupported-operation
// error.
func NewInitializeFarmInstruction(programID solana.PublicKey, accounts InitializeFarmAccounts, version StateVersion, nonce uint8) (*program.Instruction, error) {
	if version != StateVersionV2 {
		return nil, fmt.Errorf("%w: initialize farm state version %d",
			program.ErrUnsupportedOperation, version)
	}
	e := layout.NewEncoder(2 * layout.Uint8Span)
	e.Uint8(TagInitializeFarm)
	e.Uint8(nonce)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.Meta(accounts.Config),
			program.SignerMeta(accounts.Farm),
			program.Meta(accounts.Authority),
			program.Meta(accounts.PoolMint),
			program.Meta(accounts.AdminFeeKey),
			program.SignerMeta(accounts.Admin),
		},
		IsData:      e.Bytes(),
		IsProgramID: programID,
	}, nil
}

// StakeAccounts are the accounts touched by a farm deposit or withdraw, in
// positional order. The position owner signs.
type StakeAccounts struct {
	Farm        solana.PublicKey
	Authority   solana.PublicKey
	User        solana.PublicKey
	Owner       solana.PublicKey
	Source      solana.PublicKey
	Destination solana.PublicKey
	PoolMint    solana.PublicKey
}

func newStakeInstruction(tag uint8, programID solana.PublicKey, accounts StakeAccounts, amount uint64) *program.Instruction {
	e := layout.NewEncoder(layout.Uint8Span + layout.Uint64Span)
	e.Uint8(tag)
	e.Uint64(amount)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.Meta(accounts.Farm),
			program.Meta(accounts.Authority),
			program.WritableMeta(accounts.User),
			program.SignerMeta(accounts.Owner),
			program.WritableMeta(accounts.Source),
			program.WritableMeta(accounts.Destination),
			program.WritableMeta(accounts.PoolMint),
			program.Meta(program.Token),
			program.Meta(program.SysClock),
		},
		IsData:      e.Bytes(),
		IsProgramID: programID,
	}
}

// NewFarmDepositInstruction builds a stake of amount pool tokens.
func NewFarmDepositInstruction(programID solana.PublicKey, accounts StakeAccounts, amount uint64) (*program.Instruction, error) {
	return newStakeInstruction(TagFarmDeposit, programID, accounts, amount), nil
}

// NewFarmWithdrawInstruction builds an unstake of amount pool tokens.
func NewFarmWithdrawInstruction(programID solana.PublicKey, accounts StakeAccounts, amount uint64) (*program.Instruction, error) {
	return newStakeInstruction(TagFarmWithdraw, programID, accounts, amount), nil
}

// NewFarmEmergencyWithdrawInstruction builds the full unstake that forfeits
// accrued rewards. It carries no arguments beyond the tag.
func NewFarmEmergencyWithdrawInstruction(programID solana.PublicKey, accounts StakeAccounts) (*program.Instruction, error) {
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.Meta(accounts.Farm),
			program.Meta(accounts.Authority),
			program.WritableMeta(accounts.User),
			program.SignerMeta(accounts.Owner),
			program.WritableMeta(accounts.Source),
			program.WritableMeta(accounts.Destination),
			program.WritableMeta(accounts.PoolMint),
			program.Meta(program.Token),
		},
		IsData:      []byte{TagFarmEmergencyWithdraw},
		IsProgramID: programID,
	}, nil
}
