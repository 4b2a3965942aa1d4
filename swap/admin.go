package swap

import (
	"github.com/gagliardetto/solana-go"

	"github.com/deltafi-labs/deltafi-go/layout"
	"github.com/deltafi-labs/deltafi-go/program"
)

// Admin-family instruction tags. They share the swap program's dispatch
// namespace but occupy their own numeric range.
const (
	TagAdminInitialize    uint8 = 100
	TagRampAmp            uint8 = 101
	TagStopRamp           uint8 = 102
	TagPause              uint8 = 103
	TagUnpause            uint8 = 104
	TagSetFeeAccount      uint8 = 105
	TagApplyPendingAdmin  uint8 = 106
	TagCommitPendingAdmin uint8 = 107
	TagSetFees            uint8 = 108
	TagSetRewards         uint8 = 109
)

// NewAdminInitializeInstruction builds the one-time configuration initialize
// instruction. The new config account and the admin both sign.
func NewAdminInitializeInstruction(programID, configKey, adminKey solana.PublicKey, ampFactor uint64, fees Fees, rewards Rewards) (*program.Instruction, error) {
	e := layout.NewEncoder(layout.Uint8Span + layout.Uint64Span + FeesSpan + RewardsSpan)
	e.Uint8(TagAdminInitialize)
	e.Uint64(ampFactor)
	fees.EncodeInto(e)
	rewards.EncodeInto(e)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.WritableSignerMeta(configKey),
			program.SignerMeta(adminKey),
		},
		IsData:      e.Bytes(),
		IsProgramID: programID,
	}, nil
}

// NewRampAmpInstruction builds the instruction scheduling a linear
// amplification ramp towards targetAmp, finishing at stopRampTs.
func NewRampAmpInstruction(programID, configKey, swapKey, adminKey solana.PublicKey, targetAmp uint64, stopRampTs int64) (*program.Instruction, error) {
	e := layout.NewEncoder(layout.Uint8Span + layout.Uint64Span + layout.Int64Span)
	e.Uint8(TagRampAmp)
	e.Uint64(targetAmp)
	e.Int64(stopRampTs)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.SignerMeta(configKey),
			program.WritableSignerMeta(swapKey),
			program.SignerMeta(adminKey),
			program.Meta(program.SysClock),
		},
		IsData:      e.Bytes(),
		IsProgramID: programID,
	}, nil
}

// NewStopRampInstruction builds the instruction halting an in-flight
// amplification ramp at its current value.
func NewStopRampInstruction(programID, configKey, swapKey, adminKey solana.PublicKey) (*program.Instruction, error) {
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.SignerMeta(configKey),
			program.SignerMeta(swapKey),
			program.SignerMeta(adminKey),
			program.Meta(program.SysClock),
		},
		IsData:      []byte{TagStopRamp},
		IsProgramID: programID,
	}, nil
}

// NewPauseInstruction builds the pool pause instruction.
func NewPauseInstruction(programID, configKey, swapKey, adminKey solana.PublicKey) (*program.Instruction, error) {
	return newFlagInstruction(TagPause, programID, configKey, swapKey, adminKey), nil
}

// NewUnpauseInstruction builds the pool unpause instruction.
func NewUnpauseInstruction(programID, configKey, swapKey, adminKey solana.PublicKey) (*program.Instruction, error) {
	return newFlagInstruction(TagUnpause, programID, configKey, swapKey, adminKey), nil
}

func newFlagInstruction(tag uint8, programID, configKey, swapKey, adminKey solana.PublicKey) *program.Instruction {
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.SignerMeta(configKey),
			program.SignerMeta(swapKey),
			program.SignerMeta(adminKey),
		},
		IsData:      []byte{tag},
		IsProgramID: programID,
	}
}

// NewSetFeeAccountInstruction builds the instruction replacing one of the
// pool's admin fee accounts.
func NewSetFeeAccountInstruction(programID, configKey, swapKey, authority, adminKey, newFeeAccount solana.PublicKey) (*program.Instruction, error) {
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.SignerMeta(configKey),
			program.SignerMeta(swapKey),
			program.Meta(authority),
			program.SignerMeta(adminKey),
			program.Meta(newFeeAccount),
		},
		IsData:      []byte{TagSetFeeAccount},
		IsProgramID: programID,
	}, nil
}

// NewApplyPendingAdminInstruction builds the instruction promoting the
// pending admin once its deadline window is open.
func NewApplyPendingAdminInstruction(programID, configKey, adminKey solana.PublicKey) (*program.Instruction, error) {
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.SignerMeta(configKey),
			program.SignerMeta(adminKey),
			program.Meta(program.SysClock),
		},
		IsData:      []byte{TagApplyPendingAdmin},
		IsProgramID: programID,
	}, nil
}

// NewCommitPendingAdminInstruction builds the instruction recording a new
// pending admin and starting its deadline.
func NewCommitPendingAdminInstruction(programID, configKey, adminKey, newAdminKey solana.PublicKey) (*program.Instruction, error) {
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.SignerMeta(configKey),
			program.SignerMeta(adminKey),
			program.Meta(newAdminKey),
			program.Meta(program.SysClock),
		},
		IsData:      []byte{TagCommitPendingAdmin},
		IsProgramID: programID,
	}, nil
}

// NewSetFeesInstruction builds the instruction replacing a pool's fee
// schedule.
func NewSetFeesInstruction(programID, configKey, swapKey, adminKey solana.PublicKey, fees Fees) (*program.Instruction, error) {
	e := layout.NewEncoder(layout.Uint8Span + FeesSpan)
	e.Uint8(TagSetFees)
	fees.EncodeInto(e)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.Meta(configKey),
			program.SignerMeta(swapKey),
			program.SignerMeta(adminKey),
		},
		IsData:      e.Bytes(),
		IsProgramID: programID,
	}, nil
}

// NewSetRewardsInstruction builds the instruction replacing a pool's reward
// schedule.
func NewSetRewardsInstruction(programID, configKey, swapKey, adminKey solana.PublicKey, rewards Rewards) (*program.Instruction, error) {
	e := layout.NewEncoder(layout.Uint8Span + RewardsSpan)
	e.Uint8(TagSetRewards)
	rewards.EncodeInto(e)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.SignerMeta(configKey),
			program.SignerMeta(swapKey),
			program.SignerMeta(adminKey),
		},
		IsData:      e.Bytes(),
		IsProgramID: programID,
	}, nil
}
