package swap

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

var errZeroDenominator = errors.New("swap: fee denominator is zero")

// KeyedConfig is a decoded configuration account together with its address
// and the slot it was observed at.
type KeyedConfig struct {
	Key    solana.PublicKey
	Height uint64
	ConfigInfo
}

// KeyedSwap is a decoded pool account together with its address and the slot
// it was observed at.
type KeyedSwap struct {
	Key    solana.PublicKey
	Height uint64
	SwapInfo
}

// TradeFraction returns the trade fee as a ratio.
func (f *Fees) TradeFraction() (decimal.Decimal, error) {
	return fraction(f.TradeFeeNumerator, f.TradeFeeDenominator)
}

// WithdrawFraction returns the withdraw fee as a ratio.
func (f *Fees) WithdrawFraction() (decimal.Decimal, error) {
	return fraction(f.WithdrawFeeNumerator, f.WithdrawFeeDenominator)
}

// AdminTradeFraction returns the admin share of the trade fee as a ratio.
func (f *Fees) AdminTradeFraction() (decimal.Decimal, error) {
	return fraction(f.AdminTradeFeeNumerator, f.AdminTradeFeeDenominator)
}

// AdminWithdrawFraction returns the admin share of the withdraw fee as a
// ratio.
func (f *Fees) AdminWithdrawFraction() (decimal.Decimal, error) {
	return fraction(f.AdminWithdrawFeeNumerator, f.AdminWithdrawFeeDenominator)
}

// TradeFraction returns the trade reward as a ratio.
func (r *Rewards) TradeFraction() (decimal.Decimal, error) {
	return fraction(r.TradeRewardNumerator, r.TradeRewardDenominator)
}

func fraction(numerator, denominator uint64) (decimal.Decimal, error) {
	if denominator == 0 {
		return decimal.Decimal{}, errZeroDenominator
	}
	num := decimal.NewFromBigInt(new(big.Int).SetUint64(numerator), 0)
	den := decimal.NewFromBigInt(new(big.Int).SetUint64(denominator), 0)
	return num.Div(den), nil
}

// SwapAccountsFor maps an input mint to the pool-side accounts a swap of that
// mint touches: the reserve swapped into, the reserve swapped out of, and the
// admin fee account matching the output side.
func (s *KeyedSwap) SwapAccountsFor(tokenIn solana.PublicKey) (swapSource, swapDestination, adminFeeDestination solana.PublicKey, err error) {
	switch tokenIn {
	case s.TokenAMint:
		return s.TokenA, s.TokenB, s.AdminFeeKeyB, nil
	case s.TokenBMint:
		return s.TokenB, s.TokenA, s.AdminFeeKeyA, nil
	default:
		return solana.PublicKey{}, solana.PublicKey{}, solana.PublicKey{},
			fmt.Errorf("swap: token %s is not in pool %s", tokenIn, s.Key)
	}
}
