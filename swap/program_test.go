package swap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deltafi-labs/deltafi-go/layout"
	"github.com/deltafi-labs/deltafi-go/program"
)

func TestLoadConfig(t *testing.T) {
	config := ConfigInfo{
		IsInitialized: true,
		AmpFactor:     85,
		AdminKey:      testKey(t, 9),
	}
	account := &program.Account{
		PubKey: testKey(t, 1),
		Owner:  testProgramID,
		Height: 123456,
		Data:   config.Encode(),
	}

	keyed, err := LoadConfig(account, testProgramID)
	require.NoError(t, err)
	require.Equal(t, account.PubKey, keyed.Key)
	require.Equal(t, uint64(123456), keyed.Height)
	require.Equal(t, config, keyed.ConfigInfo)
}

func TestLoadConfigWrongOwner(t *testing.T) {
	config := ConfigInfo{IsInitialized: true}
	account := &program.Account{
		PubKey: testKey(t, 1),
		Owner:  testKey(t, 2),
		Data:   config.Encode(),
	}
	_, err := LoadConfig(account, testProgramID)
	require.ErrorIs(t, err, program.ErrWrongOwner)
}

func TestLoadConfigShortBuffer(t *testing.T) {
	account := &program.Account{
		PubKey: testKey(t, 1),
		Owner:  testProgramID,
		Data:   make([]byte, ConfigInfoSpan-1),
	}
	_, err := LoadConfig(account, testProgramID)
	require.ErrorIs(t, err, layout.ErrShortBuffer)
}

func TestLoadConfigUninitialized(t *testing.T) {
	account := &program.Account{
		PubKey: testKey(t, 1),
		Owner:  testProgramID,
		Data:   make([]byte, ConfigInfoSpan),
	}
	_, err := LoadConfig(account, testProgramID)
	require.ErrorIs(t, err, program.ErrUninitialized)
}

func TestLoadSwap(t *testing.T) {
	info := testSwapInfo(t)
	account := &program.Account{
		PubKey: testKey(t, 1),
		Owner:  testProgramID,
		Height: 7,
		Data:   info.Encode(),
	}

	keyed, err := LoadSwap(account, testProgramID)
	require.NoError(t, err)
	require.Equal(t, info, keyed.SwapInfo)

	account.Owner = testKey(t, 2)
	_, err = LoadSwap(account, testProgramID)
	require.ErrorIs(t, err, program.ErrWrongOwner)
}

func TestSwapAccountsFor(t *testing.T) {
	info := testSwapInfo(t)
	keyed := &KeyedSwap{Key: testKey(t, 1), SwapInfo: info}

	src, dst, fee, err := keyed.SwapAccountsFor(info.TokenAMint)
	require.NoError(t, err)
	require.Equal(t, info.TokenA, src)
	require.Equal(t, info.TokenB, dst)
	require.Equal(t, info.AdminFeeKeyB, fee)

	src, dst, fee, err = keyed.SwapAccountsFor(info.TokenBMint)
	require.NoError(t, err)
	require.Equal(t, info.TokenB, src)
	require.Equal(t, info.TokenA, dst)
	require.Equal(t, info.AdminFeeKeyA, fee)

	_, _, _, err = keyed.SwapAccountsFor(testKey(t, 99))
	require.Error(t, err)
}
