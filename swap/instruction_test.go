package swap

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/deltafi-labs/deltafi-go/layout"
	"github.com/deltafi-labs/deltafi-go/program"
)

var testProgramID = solana.MustPublicKeyFromBase58("9Wc3GDBj2cZAkVsiMghqhtRQsL8ap5kHVJGoDJ8PyriL")

func TestSwapInstructionWire(t *testing.T) {
	accounts := SwapAccounts{
		Swap:                testKey(t, 1),
		Authority:           testKey(t, 2),
		Source:              testKey(t, 3),
		SwapSource:          testKey(t, 4),
		SwapDestination:     testKey(t, 5),
		Destination:         testKey(t, 6),
		AdminFeeDestination: testKey(t, 7),
	}
	in, err := NewSwapInstruction(testProgramID, accounts, 1000, 0)
	require.NoError(t, err)
	require.Equal(t, testProgramID, in.ProgramID())

	data, err := in.Data()
	require.NoError(t, err)
	require.Len(t, data, 17)
	require.Equal(t, TagSwap, data[0])
	require.Equal(t, uint64(1000), binary.LittleEndian.Uint64(data[1:9]))
	require.Equal(t, uint64(0), binary.LittleEndian.Uint64(data[9:17]))

	metas := in.Accounts()
	require.Len(t, metas, 9)
	for i, meta := range metas {
		require.False(t, meta.IsSigner, "account %d", i)
	}
	require.Equal(t, accounts.Swap, metas[0].PublicKey)
	require.True(t, metas[2].IsWritable)
	require.True(t, metas[6].IsWritable)
	require.Equal(t, program.Token, metas[7].PublicKey)
	require.Equal(t, program.SysClock, metas[8].PublicKey)
}

func TestInitializeInstructionWire(t *testing.T) {
	accounts := InitializeAccounts{
		Config:      testKey(t, 1),
		Swap:        testKey(t, 2),
		Authority:   testKey(t, 3),
		AdminFeeA:   testKey(t, 4),
		AdminFeeB:   testKey(t, 5),
		TokenA:      testKey(t, 6),
		TokenB:      testKey(t, 7),
		PoolMint:    testKey(t, 8),
		Destination: testKey(t, 9),
		RewardToken: testKey(t, 10),
		PriceOracle: testKey(t, 11),
	}
	in, err := NewInitializeInstruction(testProgramID, accounts, 251, MaxSlope/2, 1_000_000, true)
	require.NoError(t, err)

	data, err := in.Data()
	require.NoError(t, err)
	require.Len(t, data, 19)
	require.Equal(t, TagInitialize, data[0])
	require.Equal(t, uint8(251), data[1])
	require.Equal(t, MaxSlope/2, binary.LittleEndian.Uint64(data[2:10]))
	require.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(data[10:18]))
	require.Equal(t, uint8(1), data[18])

	metas := in.Accounts()
	require.Len(t, metas, 12)
	require.True(t, metas[1].IsSigner)
	require.Equal(t, program.Token, metas[11].PublicKey)
}

func TestInitializeInstructionSlopeBound(t *testing.T) {
	_, err := NewInitializeInstruction(testProgramID, InitializeAccounts{}, 0, MaxSlope+1, 0, false)
	require.ErrorIs(t, err, layout.ErrOverflow)
}

func TestDepositWithdrawWire(t *testing.T) {
	dep, err := NewDepositInstruction(testProgramID, DepositAccounts{}, 10, 20, 5)
	require.NoError(t, err)
	data, err := dep.Data()
	require.NoError(t, err)
	require.Len(t, data, 25)
	require.Equal(t, TagDeposit, data[0])
	require.Len(t, dep.Accounts(), 10)

	wd, err := NewWithdrawInstruction(testProgramID, WithdrawAccounts{}, 30, 1, 2)
	require.NoError(t, err)
	data, err = wd.Data()
	require.NoError(t, err)
	require.Len(t, data, 25)
	require.Equal(t, TagWithdraw, data[0])
	require.Len(t, wd.Accounts(), 11)

	one, err := NewWithdrawOneInstruction(testProgramID, WithdrawOneAccounts{}, 30, 29)
	require.NoError(t, err)
	data, err = one.Data()
	require.NoError(t, err)
	require.Len(t, data, 17)
	require.Equal(t, TagWithdrawOne, data[0])
	require.Equal(t, uint64(29), binary.LittleEndian.Uint64(data[9:17]))
}

func TestLiquidityInstructionsWire(t *testing.T) {
	init, err := NewInitializeLiquidityProviderInstruction(testProgramID, testKey(t, 1), testKey(t, 2))
	require.NoError(t, err)
	data, err := init.Data()
	require.NoError(t, err)
	require.Equal(t, []byte{TagInitializeLiquidityProvider}, data)
	require.True(t, init.Accounts()[1].IsSigner)

	refresh, err := NewRefreshLiquidityObligationInstruction(testProgramID, testKey(t, 1),
		[]solana.PublicKey{testKey(t, 2), testKey(t, 3)})
	require.NoError(t, err)
	metas := refresh.Accounts()
	require.Len(t, metas, 4)
	require.Equal(t, program.SysClock, metas[1].PublicKey)
	require.True(t, metas[2].IsWritable)
	require.True(t, metas[3].IsWritable)
}

func TestRampAmpInstructionWire(t *testing.T) {
	in, err := NewRampAmpInstruction(testProgramID, testKey(t, 1), testKey(t, 2), testKey(t, 3), 150, 1650086400)
	require.NoError(t, err)

	data, err := in.Data()
	require.NoError(t, err)
	require.Len(t, data, 17)
	require.Equal(t, TagRampAmp, data[0])
	require.Equal(t, uint64(150), binary.LittleEndian.Uint64(data[1:9]))
	require.Equal(t, uint64(1650086400), binary.LittleEndian.Uint64(data[9:17]))

	metas := in.Accounts()
	require.Len(t, metas, 4)
	require.True(t, metas[1].IsSigner)
	require.True(t, metas[1].IsWritable)
	require.Equal(t, program.SysClock, metas[3].PublicKey)
}

func TestAdminScheduleInstructionsWire(t *testing.T) {
	fees := Fees{TradeFeeNumerator: 1, TradeFeeDenominator: 4}
	setFees, err := NewSetFeesInstruction(testProgramID, testKey(t, 1), testKey(t, 2), testKey(t, 3), fees)
	require.NoError(t, err)
	data, err := setFees.Data()
	require.NoError(t, err)
	require.Len(t, data, 1+FeesSpan)
	require.Equal(t, TagSetFees, data[0])
	decoded, err := DecodeFees(data[1:])
	require.NoError(t, err)
	require.Equal(t, fees, decoded)
	require.False(t, setFees.Accounts()[0].IsSigner)

	rewards := Rewards{TradeRewardNumerator: 2, TradeRewardDenominator: 1000, TradeRewardCap: 50}
	setRewards, err := NewSetRewardsInstruction(testProgramID, testKey(t, 1), testKey(t, 2), testKey(t, 3), rewards)
	require.NoError(t, err)
	data, err = setRewards.Data()
	require.NoError(t, err)
	require.Len(t, data, 1+RewardsSpan)
	require.Equal(t, TagSetRewards, data[0])

	adminInit, err := NewAdminInitializeInstruction(testProgramID, testKey(t, 1), testKey(t, 2), 85, fees, rewards)
	require.NoError(t, err)
	data, err = adminInit.Data()
	require.NoError(t, err)
	require.Len(t, data, 1+8+FeesSpan+RewardsSpan)
	require.Equal(t, TagAdminInitialize, data[0])
	require.Equal(t, uint64(85), binary.LittleEndian.Uint64(data[1:9]))
	require.True(t, adminInit.Accounts()[0].IsWritable)
	require.True(t, adminInit.Accounts()[0].IsSigner)
}

func TestFlagInstructionsWire(t *testing.T) {
	for tag, build := range map[uint8]func() (*program.Instruction, error){
		TagStopRamp: func() (*program.Instruction, error) {
			return NewStopRampInstruction(testProgramID, testKey(t, 1), testKey(t, 2), testKey(t, 3))
		},
		TagPause: func() (*program.Instruction, error) {
			return NewPauseInstruction(testProgramID, testKey(t, 1), testKey(t, 2), testKey(t, 3))
		},
		TagUnpause: func() (*program.Instruction, error) {
			return NewUnpauseInstruction(testProgramID, testKey(t, 1), testKey(t, 2), testKey(t, 3))
		},
		TagApplyPendingAdmin: func() (*program.Instruction, error) {
			return NewApplyPendingAdminInstruction(testProgramID, testKey(t, 1), testKey(t, 2))
		},
		TagCommitPendingAdmin: func() (*program.Instruction, error) {
			return NewCommitPendingAdminInstruction(testProgramID, testKey(t, 1), testKey(t, 2), testKey(t, 3))
		},
		TagSetFeeAccount: func() (*program.Instruction, error) {
			return NewSetFeeAccountInstruction(testProgramID, testKey(t, 1), testKey(t, 2), testKey(t, 3), testKey(t, 4), testKey(t, 5))
		},
	} {
		in, err := build()
		require.NoError(t, err)
		data, err := in.Data()
		require.NoError(t, err)
		require.Equal(t, []byte{tag}, data, "tag %d", tag)
	}
}

func TestTagsDisjoint(t *testing.T) {
	tags := []uint8{
		TagInitialize, TagSwap, TagDeposit, TagWithdraw, TagWithdrawOne,
		TagInitializeLiquidityProvider, TagClaimLiquidityRewards, TagRefreshLiquidityObligation,
		TagAdminInitialize, TagRampAmp, TagStopRamp, TagPause, TagUnpause,
		TagSetFeeAccount, TagApplyPendingAdmin, TagCommitPendingAdmin, TagSetFees, TagSetRewards,
	}
	seen := make(map[uint8]bool, len(tags))
	for _, tag := range tags {
		require.False(t, seen[tag], "tag %d reused", tag)
		seen[tag] = true
	}
}
