package swap

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/deltafi-labs/deltafi-go/layout"
	"github.com/deltafi-labs/deltafi-go/program"
)

// Swap-family instruction tags. Tag values are the remote program's dispatch
// key and must never change. The admin family (admin.go) occupies the
// non-overlapping 100..109 range of the same program's namespace.
const (
	TagInitialize                  uint8 = 0
	TagSwap                        uint8 = 1
	TagDeposit                     uint8 = 2
	TagWithdraw                    uint8 = 3
	TagWithdrawOne                 uint8 = 4
	TagInitializeLiquidityProvider uint8 = 5
	TagClaimLiquidityRewards       uint8 = 6
	TagRefreshLiquidityObligation  uint8 = 7
)

// MaxSlope is the upper bound of the initialize instruction's slope
// argument: the real-valued slope scaled by 10^18 must stay within [0, 1].
const MaxSlope = uint64(1_000_000_000_000_000_000)

// InitializeAccounts are the accounts touched by the pool initialize
// instruction, in positional order.
type InitializeAccounts struct {
	Config      solana.PublicKey
	Swap        solana.PublicKey
	Authority   solana.PublicKey
	AdminFeeA   solana.PublicKey
	AdminFeeB   solana.PublicKey
	TokenA      solana.PublicKey
	TokenB      solana.PublicKey
	PoolMint    solana.PublicKey
	Destination solana.PublicKey
	RewardToken solana.PublicKey
	PriceOracle solana.PublicKey
}

// NewInitializeInstruction builds the pool initialize instruction. The new
// swap account signs its own creation.
func NewInitializeInstruction(programID solana.PublicKey, accounts InitializeAccounts, nonce uint8, slope uint64, midPrice uint64, isOpenTwap bool) (*program.Instruction, error) {
	if slope > MaxSlope {
		return nil, fmt.Errorf("%w: slope %d exceeds %d", layout.ErrOverflow, slope, MaxSlope)
	}
	e := layout.NewEncoder(2*layout.Uint8Span + 2*layout.Uint64Span + layout.Uint8Span)
	e.Uint8(TagInitialize)
	e.Uint8(nonce)
	e.Uint64(slope)
	e.Uint64(midPrice)
	e.Bool(isOpenTwap)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.Meta(accounts.Config),
			program.SignerMeta(accounts.Swap),
			program.Meta(accounts.Authority),
			program.Meta(accounts.AdminFeeA),
			program.Meta(accounts.AdminFeeB),
			program.Meta(accounts.TokenA),
			program.Meta(accounts.TokenB),
			program.WritableMeta(accounts.PoolMint),
			program.WritableMeta(accounts.Destination),
			program.Meta(accounts.RewardToken),
			program.Meta(accounts.PriceOracle),
			program.Meta(program.Token),
		},
		IsData:      e.Bytes(),
		IsProgramID: programID,
	}, nil
}

// SwapAccounts are the accounts touched by a swap, in positional order. None
// of them signs.
type SwapAccounts struct {
	Swap                solana.PublicKey
	Authority           solana.PublicKey
	Source              solana.PublicKey
	SwapSource          solana.PublicKey
	SwapDestination     solana.PublicKey
	Destination         solana.PublicKey
	AdminFeeDestination solana.PublicKey
}

// NewSwapInstruction builds a swap of amountIn source tokens with a slippage
// floor of minimumAmountOut.
func NewSwapInstruction(programID solana.PublicKey, accounts SwapAccounts, amountIn, minimumAmountOut uint64) (*program.Instruction, error) {
	e := layout.NewEncoder(layout.Uint8Span + 2*layout.Uint64Span)
	e.Uint8(TagSwap)
	e.Uint64(amountIn)
	e.Uint64(minimumAmountOut)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.Meta(accounts.Swap),
			program.Meta(accounts.Authority),
			program.WritableMeta(accounts.Source),
			program.WritableMeta(accounts.SwapSource),
			program.WritableMeta(accounts.SwapDestination),
			program.WritableMeta(accounts.Destination),
			program.WritableMeta(accounts.AdminFeeDestination),
			program.Meta(program.Token),
			program.Meta(program.SysClock),
		},
		IsData:      e.Bytes(),
		IsProgramID: programID,
	}, nil
}

// DepositAccounts are the accounts touched by a deposit, in positional
// order.
type DepositAccounts struct {
	Swap          solana.PublicKey
	Authority     solana.PublicKey
	DepositTokenA solana.PublicKey
	DepositTokenB solana.PublicKey
	SwapTokenA    solana.PublicKey
	SwapTokenB    solana.PublicKey
	PoolMint      solana.PublicKey
	Destination   solana.PublicKey
}

// NewDepositInstruction builds a two-sided deposit minting at least
// minMintAmount pool tokens.
func NewDepositInstruction(programID solana.PublicKey, accounts DepositAccounts, tokenAAmount, tokenBAmount, minMintAmount uint64) (*program.Instruction, error) {
	e := layout.NewEncoder(layout.Uint8Span + 3*layout.Uint64Span)
	e.Uint8(TagDeposit)
	e.Uint64(tokenAAmount)
	e.Uint64(tokenBAmount)
	e.Uint64(minMintAmount)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.Meta(accounts.Swap),
			program.Meta(accounts.Authority),
			program.WritableMeta(accounts.DepositTokenA),
			program.WritableMeta(accounts.DepositTokenB),
			program.WritableMeta(accounts.SwapTokenA),
			program.WritableMeta(accounts.SwapTokenB),
			program.WritableMeta(accounts.PoolMint),
			program.WritableMeta(accounts.Destination),
			program.Meta(program.Token),
			program.Meta(program.SysClock),
		},
		IsData:      e.Bytes(),
		IsProgramID: programID,
	}, nil
}

// WithdrawAccounts are the accounts touched by a proportional withdraw, in
// positional order.
type WithdrawAccounts struct {
	Swap         solana.PublicKey
	Authority    solana.PublicKey
	PoolMint     solana.PublicKey
	Source       solana.PublicKey
	SwapTokenA   solana.PublicKey
	SwapTokenB   solana.PublicKey
	DestinationA solana.PublicKey
	DestinationB solana.PublicKey
	AdminFeeA    solana.PublicKey
	AdminFeeB    solana.PublicKey
}

// NewWithdrawInstruction builds a proportional withdraw burning
// poolTokenAmount pool tokens.
func NewWithdrawInstruction(programID solana.PublicKey, accounts WithdrawAccounts, poolTokenAmount, minimumTokenAAmount, minimumTokenBAmount uint64) (*program.Instruction, error) {
	e := layout.NewEncoder(layout.Uint8Span + 3*layout.Uint64Span)
	e.Uint8(TagWithdraw)
	e.Uint64(poolTokenAmount)
	e.Uint64(minimumTokenAAmount)
	e.Uint64(minimumTokenBAmount)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.Meta(accounts.Swap),
			program.Meta(accounts.Authority),
			program.WritableMeta(accounts.PoolMint),
			program.WritableMeta(accounts.Source),
			program.WritableMeta(accounts.SwapTokenA),
			program.WritableMeta(accounts.SwapTokenB),
			program.WritableMeta(accounts.DestinationA),
			program.WritableMeta(accounts.DestinationB),
			program.WritableMeta(accounts.AdminFeeA),
			program.WritableMeta(accounts.AdminFeeB),
			program.Meta(program.Token),
		},
		IsData:      e.Bytes(),
		IsProgramID: programID,
	}, nil
}

// WithdrawOneAccounts are the accounts touched by a single-asset withdraw,
// in positional order.
type WithdrawOneAccounts struct {
	Swap                solana.PublicKey
	Authority           solana.PublicKey
	PoolMint            solana.PublicKey
	Source              solana.PublicKey
	SwapBaseToken       solana.PublicKey
	SwapQuoteToken      solana.PublicKey
	BaseDestination     solana.PublicKey
	AdminFeeDestination solana.PublicKey
}

// NewWithdrawOneInstruction builds a single-asset withdraw burning
// poolTokenAmount pool tokens for at least minimumTokenAmount of the base
// token.
func NewWithdrawOneInstruction(programID solana.PublicKey, accounts WithdrawOneAccounts, poolTokenAmount, minimumTokenAmount uint64) (*program.Instruction, error) {
	e := layout.NewEncoder(layout.Uint8Span + 2*layout.Uint64Span)
	e.Uint8(TagWithdrawOne)
	e.Uint64(poolTokenAmount)
	e.Uint64(minimumTokenAmount)
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.Meta(accounts.Swap),
			program.Meta(accounts.Authority),
			program.WritableMeta(accounts.PoolMint),
			program.WritableMeta(accounts.Source),
			program.WritableMeta(accounts.SwapBaseToken),
			program.WritableMeta(accounts.SwapQuoteToken),
			program.WritableMeta(accounts.BaseDestination),
			program.WritableMeta(accounts.AdminFeeDestination),
			program.Meta(program.Token),
			program.Meta(program.SysClock),
		},
		IsData:      e.Bytes(),
		IsProgramID: programID,
	}, nil
}

// NewInitializeLiquidityProviderInstruction builds the instruction creating
// a liquidity provider position account for owner.
func NewInitializeLiquidityProviderInstruction(programID, provider, owner solana.PublicKey) (*program.Instruction, error) {
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.WritableMeta(provider),
			program.SignerMeta(owner),
		},
		IsData:      []byte{TagInitializeLiquidityProvider},
		IsProgramID: programID,
	}, nil
}

// ClaimLiquidityRewardsAccounts are the accounts touched by a liquidity
// reward claim, in positional order.
type ClaimLiquidityRewardsAccounts struct {
	Swap             solana.PublicKey
	Authority        solana.PublicKey
	Provider         solana.PublicKey
	Owner            solana.PublicKey
	ClaimDestination solana.PublicKey
	ClaimMint        solana.PublicKey
}

// NewClaimLiquidityRewardsInstruction builds the reward claim instruction.
// The provider owner signs.
func NewClaimLiquidityRewardsInstruction(programID solana.PublicKey, accounts ClaimLiquidityRewardsAccounts) (*program.Instruction, error) {
	return &program.Instruction{
		IsAccounts: []*solana.AccountMeta{
			program.Meta(accounts.Swap),
			program.Meta(accounts.Authority),
			program.WritableMeta(accounts.Provider),
			program.SignerMeta(accounts.Owner),
			program.WritableMeta(accounts.ClaimDestination),
			program.WritableMeta(accounts.ClaimMint),
			program.Meta(program.Token),
		},
		IsData:      []byte{TagClaimLiquidityRewards},
		IsProgramID: programID,
	}, nil
}

// NewRefreshLiquidityObligationInstruction builds the obligation refresh
// instruction over any number of provider accounts. The remote program walks
// the trailing accounts in order.
func NewRefreshLiquidityObligationInstruction(programID, swapKey solana.PublicKey, providers []solana.PublicKey) (*program.Instruction, error) {
	metas := []*solana.AccountMeta{
		program.Meta(swapKey),
		program.Meta(program.SysClock),
	}
	for _, provider := range providers {
		metas = append(metas, program.WritableMeta(provider))
	}
	return &program.Instruction{
		IsAccounts:  metas,
		IsData:      []byte{TagRefreshLiquidityObligation},
		IsProgramID: programID,
	}, nil
}
