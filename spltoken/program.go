package spltoken

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/deltafi-labs/deltafi-go/program"
)

// KeyedUser is a decoded token account together with its address and the
// slot it was observed at.
type KeyedUser struct {
	Key    solana.PublicKey
	Height uint64
	UserLayout
}

// KeyedToken is a decoded mint together with its address and the slot it was
// observed at.
type KeyedToken struct {
	Key    solana.PublicKey
	Height uint64
	TokenLayout
}

// LoadUser decodes a fetched token account. It must be owned by the SPL
// token program and initialized.
func LoadUser(account *program.Account) (*KeyedUser, error) {
	user, err := DecodeUserLayout(account.Data)
	if err != nil {
		return nil, err
	}
	if err := account.CheckOwner(program.Token); err != nil {
		return nil, err
	}
	if err := program.CheckInitialized(user.IsInitialized(), account.PubKey); err != nil {
		return nil, err
	}
	return &KeyedUser{
		Key:        account.PubKey,
		Height:     account.Height,
		UserLayout: user,
	}, nil
}

// LoadToken decodes a fetched mint with the same gates as LoadUser.
func LoadToken(account *program.Account) (*KeyedToken, error) {
	token, err := DecodeTokenLayout(account.Data)
	if err != nil {
		return nil, err
	}
	if err := account.CheckOwner(program.Token); err != nil {
		return nil, err
	}
	if err := program.CheckInitialized(token.IsInitialized, account.PubKey); err != nil {
		return nil, err
	}
	return &KeyedToken{
		Key:         account.PubKey,
		Height:      account.Height,
		TokenLayout: token,
	}, nil
}

// UiAmount returns a raw token amount scaled down by the mint's decimals.
func (t *KeyedToken) UiAmount(amount uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(t.Decimals))
}
