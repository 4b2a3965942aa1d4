package farm

import (
	"github.com/gagliardetto/solana-go"

	"github.com/deltafi-labs/deltafi-go/program"
)

// KeyedState is a decoded farm account together with its address and the
// slot it was observed at.
type KeyedState struct {
	Key    solana.PublicKey
	Height uint64
	State
}

// KeyedUser is a decoded farm user account together with its address and the
// slot it was observed at.
type KeyedUser struct {
	Key    solana.PublicKey
	Height uint64
	UserInfo
}

// LoadState decodes a fetched farm account, enforcing the ownership and
// initialization gates after the structural one.
func LoadState(account *program.Account, programID solana.PublicKey) (*KeyedState, error) {
	state, err := DecodeState(account.Data)
	if err != nil {
		return nil, err
	}
	if err := account.CheckOwner(programID); err != nil {
		return nil, err
	}
	if err := program.CheckInitialized(state.IsInitialized, account.PubKey); err != nil {
		return nil, err
	}
	return &KeyedState{
		Key:    account.PubKey,
		Height: account.Height,
		State:  state,
	}, nil
}

// LoadUser decodes a fetched farm user account with the same gates as
// LoadState.
func LoadUser(account *program.Account, programID solana.PublicKey) (*KeyedUser, error) {
	user, err := DecodeUserInfo(account.Data)
	if err != nil {
		return nil, err
	}
	if err := account.CheckOwner(programID); err != nil {
		return nil, err
	}
	if err := program.CheckInitialized(user.IsInitialized, account.PubKey); err != nil {
		return nil, err
	}
	return &KeyedUser{
		Key:      account.PubKey,
		Height:   account.Height,
		UserInfo: user,
	}, nil
}

// PositionFor returns the user's position in pool, if any.
func (u *KeyedUser) PositionFor(pool solana.PublicKey) (Position, bool) {
	for _, p := range u.Positions {
		if p.Pool == pool {
			return p, true
		}
	}
	return Position{}, false
}
