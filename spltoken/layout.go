// Package spltoken decodes the SPL token accounts the pool and farm state
// point at: the reserve and fee accounts are token accounts, the pool and
// reward tokens are mints.
package spltoken

import (
	"github.com/gagliardetto/solana-go"

	"github.com/deltafi-labs/deltafi-go/layout"
)

// Spans of the two SPL token layouts, in bytes.
const (
	UserLayoutSpan = 2*layout.BlobSpan + layout.Uint64Span + layout.Uint32Span +
		layout.BlobSpan + layout.Uint8Span + layout.Uint32Span + 2*layout.Uint64Span +
		layout.Uint32Span + layout.BlobSpan
	TokenLayoutSpan = layout.Uint32Span + layout.BlobSpan + layout.Uint64Span +
		2*layout.Uint8Span + layout.Uint32Span + layout.BlobSpan
)

// Token account states.
const (
	StateUninitialized uint8 = 0
	StateInitialized   uint8 = 1
	StateFrozen        uint8 = 2
)

// UserLayout is an SPL token holding account. The option fields are COption
// discriminants; the trailing key is meaningful only when its option is
// non-zero.
type UserLayout struct {
	Mint                 solana.PublicKey
	Owner                solana.PublicKey
	Amount               uint64
	DelegateOption       uint32
	Delegate             solana.PublicKey
	State                uint8
	IsNativeOption       uint32
	IsNative             uint64
	DelegatedAmount      uint64
	CloseAuthorityOption uint32
	CloseAuthority       solana.PublicKey
}

// IsInitialized reports whether the account has been initialized. Frozen
// accounts count as initialized.
func (u *UserLayout) IsInitialized() bool {
	return u.State != StateUninitialized
}

// Encode serializes the account into its 165-byte wire form.
func (u *UserLayout) Encode() []byte {
	e := layout.NewEncoder(UserLayoutSpan)
	e.PublicKey(u.Mint)
	e.PublicKey(u.Owner)
	e.Uint64(u.Amount)
	e.Uint32(u.DelegateOption)
	e.PublicKey(u.Delegate)
	e.Uint8(u.State)
	e.Uint32(u.IsNativeOption)
	e.Uint64(u.IsNative)
	e.Uint64(u.DelegatedAmount)
	e.Uint32(u.CloseAuthorityOption)
	e.PublicKey(u.CloseAuthority)
	return e.Bytes()
}

// DecodeUserLayout reads a 165-byte token account.
func DecodeUserLayout(buf []byte) (UserLayout, error) {
	d := layout.NewDecoder(buf)
	u := UserLayout{
		Mint:                 d.PublicKey(),
		Owner:                d.PublicKey(),
		Amount:               d.Uint64(),
		DelegateOption:       d.Uint32(),
		Delegate:             d.PublicKey(),
		State:                d.Uint8(),
		IsNativeOption:       d.Uint32(),
		IsNative:             d.Uint64(),
		DelegatedAmount:      d.Uint64(),
		CloseAuthorityOption: d.Uint32(),
		CloseAuthority:       d.PublicKey(),
	}
	return u, d.Err()
}

// TokenLayout is an SPL token mint.
type TokenLayout struct {
	MintAuthorityOption   uint32
	MintAuthority         solana.PublicKey
	Supply                uint64
	Decimals              uint8
	IsInitialized         bool
	FreezeAuthorityOption uint32
	FreezeAuthority       solana.PublicKey
}

// Encode serializes the mint into its 82-byte wire form.
func (t *TokenLayout) Encode() []byte {
	e := layout.NewEncoder(TokenLayoutSpan)
	e.Uint32(t.MintAuthorityOption)
	e.PublicKey(t.MintAuthority)
	e.Uint64(t.Supply)
	e.Uint8(t.Decimals)
	e.Bool(t.IsInitialized)
	e.Uint32(t.FreezeAuthorityOption)
	e.PublicKey(t.FreezeAuthority)
	return e.Bytes()
}

// DecodeTokenLayout reads an 82-byte mint.
func DecodeTokenLayout(buf []byte) (TokenLayout, error) {
	d := layout.NewDecoder(buf)
	t := TokenLayout{
		MintAuthorityOption:   d.Uint32(),
		MintAuthority:         d.PublicKey(),
		Supply:                d.Uint64(),
		Decimals:              d.Uint8(),
		IsInitialized:         d.Bool(),
		FreezeAuthorityOption: d.Uint32(),
		FreezeAuthority:       d.PublicKey(),
	}
	return t, d.Err()
}
