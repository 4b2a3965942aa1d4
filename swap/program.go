package swap

import (
	"github.com/gagliardetto/solana-go"

	"github.com/deltafi-labs/deltafi-go/program"
)

// LoadConfig decodes a fetched configuration account. The account must be
// owned by programID and carry the initialization flag; the two failures are
// distinguishable via errors.Is against program.ErrWrongOwner and
// program.ErrUninitialized.
func LoadConfig(account *program.Account, programID solana.PublicKey) (*KeyedConfig, error) {
	config, err := DecodeConfigInfo(account.Data)
	if err != nil {
		return nil, err
	}
	if err := account.CheckOwner(programID); err != nil {
		return nil, err
	}
	if err := program.CheckInitialized(config.IsInitialized, account.PubKey); err != nil {
		return nil, err
	}
	return &KeyedConfig{
		Key:        account.PubKey,
		Height:     account.Height,
		ConfigInfo: config,
	}, nil
}

// LoadSwap decodes a fetched pool account, applying the same owner and
// initialization gates as LoadConfig.
func LoadSwap(account *program.Account, programID solana.PublicKey) (*KeyedSwap, error) {
	info, err := DecodeSwapInfo(account.Data)
	if err != nil {
		return nil, err
	}
	if err := account.CheckOwner(programID); err != nil {
		return nil, err
	}
	if err := program.CheckInitialized(info.IsInitialized, account.PubKey); err != nil {
		return nil, err
	}
	return &KeyedSwap{
		Key:      account.PubKey,
		Height:   account.Height,
		SwapInfo: info,
	}, nil
}
