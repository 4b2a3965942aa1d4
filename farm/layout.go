// Package farm is the client codec for the liquidity-farming program. The
// farm state layout was captured in two incompatible shapes, so State is a
// versioned union over both candidates rather than a guess at which one the
// deployed program uses.
package farm

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/deltafi-labs/deltafi-go/layout"
	"github.com/deltafi-labs/deltafi-go/program"
	"github.com/deltafi-labs/deltafi-go/swap"
)

// Spans of the farm layouts, in bytes.
const (
	StateV1Span  = 3*layout.Uint8Span + 3*layout.BlobSpan + swap.FeesSpan
	StateV2Span  = 3*layout.Uint8Span + 4*layout.BlobSpan + swap.FeesSpan + swap.RewardsSpan
	PositionSpan = layout.BlobSpan + 4*layout.Uint64Span + 2*layout.Int64Span
	UserInfoSpan = 2*layout.Uint8Span + layout.BlobSpan + MaxPositions*PositionSpan
)

// MaxPositions is the fixed number of position slots in a farm user account.
const MaxPositions = 10

// StateVersion distinguishes the two captured farm state shapes.
type StateVersion uint8

const (
	// StateVersionV1 is the legacy shape without a config reference or
	// reward schedule.
	StateVersionV1 StateVersion = 1
	// StateVersionV2 is the current shape.
	StateVersionV2 StateVersion = 2
)

// State is a farm account in either captured shape. ConfigKey and Rewards
// are zero when Version is StateVersionV1, which does not carry them.
type State struct {
	Version       StateVersion
	IsInitialized bool
	IsPaused      bool
	Nonce         uint8
	ConfigKey     solana.PublicKey
	PoolMint      solana.PublicKey
	AdminKey      solana.PublicKey
	AdminFeeKey   solana.PublicKey
	Fees          swap.Fees
	Rewards       swap.Rewards
}

func decodeStateV2(d *layout.Decoder) State {
	return State{
		Version:       StateVersionV2,
		IsInitialized: d.Bool(),
		IsPaused:      d.Bool(),
		Nonce:         d.Uint8(),
		ConfigKey:     d.PublicKey(),
		PoolMint:      d.PublicKey(),
		AdminKey:      d.PublicKey(),
		AdminFeeKey:   d.PublicKey(),
		Fees:          swap.DecodeFeesFrom(d),
		Rewards:       swap.DecodeRewardsFrom(d),
	}
}

func decodeStateV1(d *layout.Decoder) State {
	return State{
		Version:       StateVersionV1,
		IsInitialized: d.Bool(),
		IsPaused:      d.Bool(),
		Nonce:         d.Uint8(),
		PoolMint:      d.PublicKey(),
		AdminKey:      d.PublicKey(),
		AdminFeeKey:   d.PublicKey(),
		Fees:          swap.DecodeFeesFrom(d),
	}
}

// DecodeState reads a farm account in whichever captured shape the buffer
// can hold, preferring the current one. Bytes past the matched span are
// ignored.
func DecodeState(buf []byte) (State, error) {
	d := layout.NewDecoder(buf)
	if len(buf) >= StateV2Span {
		s := decodeStateV2(d)
		return s, d.Err()
	}
	s := decodeStateV1(d)
	return s, d.Err()
}

// Encode serializes the state into its wire form. Only the current shape
// round-trips; the legacy shape is decode-only until the deployed layout is
// confirmed.
func (s *State) Encode() ([]byte, error) {
	if s.Version != StateVersionV2 {
		return nil, fmt.Errorf("%w: encode farm state version %d",
			program.ErrUnsupportedOperation, s.Version)
	}
	e := layout.NewEncoder(StateV2Span)
	e.Bool(s.IsInitialized)
	e.Bool(s.IsPaused)
	e.Uint8(s.Nonce)
	e.PublicKey(s.ConfigKey)
	e.PublicKey(s.PoolMint)
	e.PublicKey(s.AdminKey)
	e.PublicKey(s.AdminFeeKey)
	s.Fees.EncodeInto(e)
	s.Rewards.EncodeInto(e)
	return e.Bytes(), nil
}

// Position is one staked pool entry inside a farm user account.
type Position struct {
	Pool               solana.PublicKey
	DepositedAmount    uint64
	RewardsOwed        uint64
	RewardsEstimated   uint64
	CumulativeInterest uint64
	LastUpdateTs       int64
	NextClaimTs        int64
}

func (p *Position) encode(e *layout.Encoder) {
	e.PublicKey(p.Pool)
	e.Uint64(p.DepositedAmount)
	e.Uint64(p.RewardsOwed)
	e.Uint64(p.RewardsEstimated)
	e.Uint64(p.CumulativeInterest)
	e.Int64(p.LastUpdateTs)
	e.Int64(p.NextClaimTs)
}

func decodePosition(d *layout.Decoder) Position {
	return Position{
		Pool:               d.PublicKey(),
		DepositedAmount:    d.Uint64(),
		RewardsOwed:        d.Uint64(),
		RewardsEstimated:   d.Uint64(),
		CumulativeInterest: d.Uint64(),
		LastUpdateTs:       d.Int64(),
		NextClaimTs:        d.Int64(),
	}
}

// UserInfo is a farm user's position account. The wire form always carries
// MaxPositions slots; Positions holds only the populated prefix.
type UserInfo struct {
	IsInitialized bool
	Owner         solana.PublicKey
	Positions     []Position
}

// Encode serializes the account into its 834-byte wire form, zero-padding
// the unused position slots.
func (u *UserInfo) Encode() ([]byte, error) {
	if len(u.Positions) > MaxPositions {
		return nil, fmt.Errorf("%w: %d positions, capacity %d",
			layout.ErrOverflow, len(u.Positions), MaxPositions)
	}
	e := layout.NewEncoder(UserInfoSpan)
	e.Bool(u.IsInitialized)
	e.PublicKey(u.Owner)
	e.Uint8(uint8(len(u.Positions)))
	for i := range u.Positions {
		u.Positions[i].encode(e)
	}
	var empty Position
	for i := len(u.Positions); i < MaxPositions; i++ {
		empty.encode(e)
	}
	return e.Bytes(), nil
}

// DecodeUserInfo reads a farm user account, truncating Positions to the
// stored count. A stored count beyond capacity decodes as full capacity.
func DecodeUserInfo(buf []byte) (UserInfo, error) {
	d := layout.NewDecoder(buf)
	u := UserInfo{
		IsInitialized: d.Bool(),
		Owner:         d.PublicKey(),
	}
	count := int(d.Uint8())
	if count > MaxPositions {
		count = MaxPositions
	}
	all := make([]Position, MaxPositions)
	for i := range all {
		all[i] = decodePosition(d)
	}
	if err := d.Err(); err != nil {
		return UserInfo{}, err
	}
	u.Positions = all[:count]
	return u, nil
}
