package program

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	// ErrWrongOwner reports a fetched account whose recorded owner is not
	// the expected program.
	ErrWrongOwner = errors.New("program: account not owned by expected program")
	// ErrUninitialized reports a decoded account whose initialization flag
	// is not set.
	ErrUninitialized = errors.New("program: account not initialized")
	// ErrUnsupportedOperation reports a request against a layout version
	// the remote program no longer (or does not yet) accept.
	ErrUnsupportedOperation = errors.New("program: operation not supported for this layout version")
)

// Account is the value the external RPC collaborator hands this layer for a
// fetched ledger account: its address, its recorded owner, the slot it was
// observed at, and the raw data bytes. This package never fetches anything
// itself.
type Account struct {
	PubKey solana.PublicKey
	Owner  solana.PublicKey
	Height uint64
	Data   []byte
}

// CheckOwner fails with ErrWrongOwner unless the account's recorded owner is
// the expected program. Every loader applies this gate before trusting
// decoded state: an unrelated account of the right length must never pass as
// program state.
func (a *Account) CheckOwner(expected solana.PublicKey) error {
	if a.Owner != expected {
		return fmt.Errorf("%w: account %s owned by %s, expected %s",
			ErrWrongOwner, a.PubKey, a.Owner, expected)
	}
	return nil
}

// CheckInitialized fails with ErrUninitialized when the decoded
// initialization flag is unset.
func CheckInitialized(initialized bool, key solana.PublicKey) error {
	if !initialized {
		return fmt.Errorf("%w: account %s", ErrUninitialized, key)
	}
	return nil
}
