// Package swap is the client codec for the stable-curve swap program: the
// persisted account layouts (global config, per-pool state), the swap-family
// and admin-family instruction encoders, and the validated state loaders.
package swap

import (
	"github.com/gagliardetto/solana-go"

	"github.com/deltafi-labs/deltafi-go/layout"
)

// Spans of the composite layouts, in bytes. Each is the flat concatenation
// of its fields in declaration order.
const (
	FeesSpan       = 8 * layout.Uint64Span
	RewardsSpan    = 3 * layout.Uint64Span
	OracleSpan     = layout.Uint32Span + 4*layout.BlobSpan + layout.Uint64Span + 2*layout.BlobSpan
	ConfigInfoSpan = 2*layout.Uint8Span + layout.Uint64Span + layout.Int64Span +
		3*layout.BlobSpan + FeesSpan + RewardsSpan
	SwapInfoSpan = 3*layout.Uint8Span + 2*layout.Uint64Span + 2*layout.Int64Span +
		7*layout.BlobSpan + FeesSpan + OracleSpan + RewardsSpan + 5*layout.FixedU256Span
)

// Fees is the pool fee schedule: four numerator/denominator pairs, all u64.
// Denominators must be non-zero before a schedule is used in a division;
// the codec transports whatever it is given.
type Fees struct {
	AdminTradeFeeNumerator      uint64
	AdminTradeFeeDenominator    uint64
	AdminWithdrawFeeNumerator   uint64
	AdminWithdrawFeeDenominator uint64
	TradeFeeNumerator           uint64
	TradeFeeDenominator         uint64
	WithdrawFeeNumerator        uint64
	WithdrawFeeDenominator      uint64
}

// EncodeInto writes the schedule through an in-flight encoder. The farm
// layouts embed the same schedule and share this codec.
func (f *Fees) EncodeInto(e *layout.Encoder) {
	e.Uint64(f.AdminTradeFeeNumerator)
	e.Uint64(f.AdminTradeFeeDenominator)
	e.Uint64(f.AdminWithdrawFeeNumerator)
	e.Uint64(f.AdminWithdrawFeeDenominator)
	e.Uint64(f.TradeFeeNumerator)
	e.Uint64(f.TradeFeeDenominator)
	e.Uint64(f.WithdrawFeeNumerator)
	e.Uint64(f.WithdrawFeeDenominator)
}

// DecodeFeesFrom reads the schedule through an in-flight decoder.
func DecodeFeesFrom(d *layout.Decoder) Fees {
	return Fees{
		AdminTradeFeeNumerator:      d.Uint64(),
		AdminTradeFeeDenominator:    d.Uint64(),
		AdminWithdrawFeeNumerator:   d.Uint64(),
		AdminWithdrawFeeDenominator: d.Uint64(),
		TradeFeeNumerator:           d.Uint64(),
		TradeFeeDenominator:         d.Uint64(),
		WithdrawFeeNumerator:        d.Uint64(),
		WithdrawFeeDenominator:      d.Uint64(),
	}
}

// Encode serializes the schedule into its 64-byte wire form.
func (f *Fees) Encode() []byte {
	e := layout.NewEncoder(FeesSpan)
	f.EncodeInto(e)
	return e.Bytes()
}

// DecodeFees reads a 64-byte fee schedule.
func DecodeFees(buf []byte) (Fees, error) {
	d := layout.NewDecoder(buf)
	f := DecodeFeesFrom(d)
	return f, d.Err()
}

// Rewards is the trade reward schedule: numerator, denominator and the cap
// on a single reward payout.
type Rewards struct {
	TradeRewardNumerator   uint64
	TradeRewardDenominator uint64
	TradeRewardCap         uint64
}

// EncodeInto writes the schedule through an in-flight encoder.
func (r *Rewards) EncodeInto(e *layout.Encoder) {
	e.Uint64(r.TradeRewardNumerator)
	e.Uint64(r.TradeRewardDenominator)
	e.Uint64(r.TradeRewardCap)
}

// DecodeRewardsFrom reads the schedule through an in-flight decoder.
func DecodeRewardsFrom(d *layout.Decoder) Rewards {
	return Rewards{
		TradeRewardNumerator:   d.Uint64(),
		TradeRewardDenominator: d.Uint64(),
		TradeRewardCap:         d.Uint64(),
	}
}

// Encode serializes the schedule into its 24-byte wire form.
func (r *Rewards) Encode() []byte {
	e := layout.NewEncoder(RewardsSpan)
	r.EncodeInto(e)
	return e.Bytes()
}

// DecodeRewards reads a 24-byte reward schedule.
func DecodeRewards(buf []byte) (Rewards, error) {
	d := layout.NewDecoder(buf)
	r := DecodeRewardsFrom(d)
	return r, d.Err()
}

// Oracle is the pool's time-weighted price accumulator. Only the remote
// program mutates it; this layer decodes it.
type Oracle struct {
	Period               uint32
	Token0               solana.PublicKey
	Token1               solana.PublicKey
	Price0CumulativeLast layout.Uint256
	Price1CumulativeLast layout.Uint256
	BlockTimestampLast   uint64
	Price0Average        layout.Uint256
	Price1Average        layout.Uint256
}

func (o *Oracle) encode(e *layout.Encoder) {
	e.Uint32(o.Period)
	e.PublicKey(o.Token0)
	e.PublicKey(o.Token1)
	e.Uint256(o.Price0CumulativeLast)
	e.Uint256(o.Price1CumulativeLast)
	e.Uint64(o.BlockTimestampLast)
	e.Uint256(o.Price0Average)
	e.Uint256(o.Price1Average)
}

func decodeOracle(d *layout.Decoder) Oracle {
	return Oracle{
		Period:               d.Uint32(),
		Token0:               d.PublicKey(),
		Token1:               d.PublicKey(),
		Price0CumulativeLast: d.Uint256(),
		Price1CumulativeLast: d.Uint256(),
		BlockTimestampLast:   d.Uint64(),
		Price0Average:        d.Uint256(),
		Price1Average:        d.Uint256(),
	}
}

// Encode serializes the accumulator into its 204-byte wire form.
func (o *Oracle) Encode() []byte {
	e := layout.NewEncoder(OracleSpan)
	o.encode(e)
	return e.Bytes()
}

// DecodeOracle reads a 204-byte accumulator.
func DecodeOracle(buf []byte) (Oracle, error) {
	d := layout.NewDecoder(buf)
	o := decodeOracle(d)
	return o, d.Err()
}

// ConfigInfo is the program's singleton configuration account.
type ConfigInfo struct {
	IsInitialized       bool
	IsPaused            bool
	AmpFactor           uint64
	FutureAdminDeadline int64
	FutureAdminKey      solana.PublicKey
	AdminKey            solana.PublicKey
	DeltafiMint         solana.PublicKey
	Fees                Fees
	Rewards             Rewards
}

func (c *ConfigInfo) encode(e *layout.Encoder) {
	e.Bool(c.IsInitialized)
	e.Bool(c.IsPaused)
	e.Uint64(c.AmpFactor)
	e.Int64(c.FutureAdminDeadline)
	e.PublicKey(c.FutureAdminKey)
	e.PublicKey(c.AdminKey)
	e.PublicKey(c.DeltafiMint)
	c.Fees.EncodeInto(e)
	c.Rewards.EncodeInto(e)
}

func decodeConfigInfo(d *layout.Decoder) ConfigInfo {
	return ConfigInfo{
		IsInitialized:       d.Bool(),
		IsPaused:            d.Bool(),
		AmpFactor:           d.Uint64(),
		FutureAdminDeadline: d.Int64(),
		FutureAdminKey:      d.PublicKey(),
		AdminKey:            d.PublicKey(),
		DeltafiMint:         d.PublicKey(),
		Fees:                DecodeFeesFrom(d),
		Rewards:             DecodeRewardsFrom(d),
	}
}

// Encode serializes the configuration into its 202-byte wire form.
func (c *ConfigInfo) Encode() []byte {
	e := layout.NewEncoder(ConfigInfoSpan)
	c.encode(e)
	return e.Bytes()
}

// DecodeConfigInfo reads a configuration account. Bytes past the span are
// ignored.
func DecodeConfigInfo(buf []byte) (ConfigInfo, error) {
	d := layout.NewDecoder(buf)
	c := decodeConfigInfo(d)
	return c, d.Err()
}

// SwapInfo is the per-pool persisted state. Created once by the initialize
// instruction and mutated only by the remote program afterwards; this layer
// is read-only with respect to it, but Encode exists for test fixtures and
// round-trip checks.
type SwapInfo struct {
	IsInitialized    bool
	IsPaused         bool
	Nonce            uint8
	InitialAmpFactor uint64
	TargetAmpFactor  uint64
	StartRampTs      int64
	StopRampTs       int64

	TokenA       solana.PublicKey
	TokenB       solana.PublicKey
	PoolMint     solana.PublicKey
	TokenAMint   solana.PublicKey
	TokenBMint   solana.PublicKey
	AdminFeeKeyA solana.PublicKey
	AdminFeeKeyB solana.PublicKey

	Fees    Fees
	Oracle  Oracle
	Rewards Rewards

	BaseTarget          layout.FixedU256
	QuoteTarget         layout.FixedU256
	BaseReserve         layout.FixedU256
	QuoteReserve        layout.FixedU256
	BasePriceCumulative layout.FixedU256
}

func (s *SwapInfo) encode(e *layout.Encoder) {
	e.Bool(s.IsInitialized)
	e.Bool(s.IsPaused)
	e.Uint8(s.Nonce)
	e.Uint64(s.InitialAmpFactor)
	e.Uint64(s.TargetAmpFactor)
	e.Int64(s.StartRampTs)
	e.Int64(s.StopRampTs)
	e.PublicKey(s.TokenA)
	e.PublicKey(s.TokenB)
	e.PublicKey(s.PoolMint)
	e.PublicKey(s.TokenAMint)
	e.PublicKey(s.TokenBMint)
	e.PublicKey(s.AdminFeeKeyA)
	e.PublicKey(s.AdminFeeKeyB)
	s.Fees.EncodeInto(e)
	s.Oracle.encode(e)
	s.Rewards.EncodeInto(e)
	e.FixedU256(s.BaseTarget)
	e.FixedU256(s.QuoteTarget)
	e.FixedU256(s.BaseReserve)
	e.FixedU256(s.QuoteReserve)
	e.FixedU256(s.BasePriceCumulative)
}

func decodeSwapInfo(d *layout.Decoder) SwapInfo {
	return SwapInfo{
		IsInitialized:       d.Bool(),
		IsPaused:            d.Bool(),
		Nonce:               d.Uint8(),
		InitialAmpFactor:    d.Uint64(),
		TargetAmpFactor:     d.Uint64(),
		StartRampTs:         d.Int64(),
		StopRampTs:          d.Int64(),
		TokenA:              d.PublicKey(),
		TokenB:              d.PublicKey(),
		PoolMint:            d.PublicKey(),
		TokenAMint:          d.PublicKey(),
		TokenBMint:          d.PublicKey(),
		AdminFeeKeyA:        d.PublicKey(),
		AdminFeeKeyB:        d.PublicKey(),
		Fees:                DecodeFeesFrom(d),
		Oracle:              decodeOracle(d),
		Rewards:             DecodeRewardsFrom(d),
		BaseTarget:          d.FixedU256(),
		QuoteTarget:         d.FixedU256(),
		BaseReserve:         d.FixedU256(),
		QuoteReserve:        d.FixedU256(),
		BasePriceCumulative: d.FixedU256(),
	}
}

// Encode serializes the pool state into its 871-byte wire form.
func (s *SwapInfo) Encode() []byte {
	e := layout.NewEncoder(SwapInfoSpan)
	s.encode(e)
	return e.Bytes()
}

// DecodeSwapInfo reads a pool state account. Bytes past the span are
// ignored.
func DecodeSwapInfo(buf []byte) (SwapInfo, error) {
	d := layout.NewDecoder(buf)
	s := decodeSwapInfo(d)
	return s, d.Err()
}
