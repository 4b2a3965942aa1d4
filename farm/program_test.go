package farm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deltafi-labs/deltafi-go/program"
	"github.com/deltafi-labs/deltafi-go/swap"
)

func TestLoadState(t *testing.T) {
	state := State{
		Version:       StateVersionV2,
		IsInitialized: true,
		ConfigKey:     testKey(t, 1),
		PoolMint:      testKey(t, 2),
		AdminKey:      testKey(t, 3),
		AdminFeeKey:   testKey(t, 4),
		Fees:          swap.Fees{TradeFeeNumerator: 1, TradeFeeDenominator: 4},
	}
	data, err := state.Encode()
	require.NoError(t, err)

	account := &program.Account{
		PubKey: testKey(t, 10),
		Owner:  testProgramID,
		Height: 42,
		Data:   data,
	}
	keyed, err := LoadState(account, testProgramID)
	require.NoError(t, err)
	require.Equal(t, state, keyed.State)
	require.Equal(t, uint64(42), keyed.Height)

	account.Owner = testKey(t, 11)
	_, err = LoadState(account, testProgramID)
	require.ErrorIs(t, err, program.ErrWrongOwner)
}

func TestLoadUser(t *testing.T) {
	user := UserInfo{
		IsInitialized: true,
		Owner:         testKey(t, 1),
		Positions: []Position{
			{Pool: testKey(t, 2), DepositedAmount: 777},
		},
	}
	data, err := user.Encode()
	require.NoError(t, err)

	account := &program.Account{
		PubKey: testKey(t, 10),
		Owner:  testProgramID,
		Data:   data,
	}
	keyed, err := LoadUser(account, testProgramID)
	require.NoError(t, err)

	pos, ok := keyed.PositionFor(testKey(t, 2))
	require.True(t, ok)
	require.Equal(t, uint64(777), pos.DepositedAmount)

	_, ok = keyed.PositionFor(testKey(t, 3))
	require.False(t, ok)
}

func TestLoadUserUninitialized(t *testing.T) {
	account := &program.Account{
		PubKey: testKey(t, 10),
		Owner:  testProgramID,
		Data:   make([]byte, UserInfoSpan),
	}
	_, err := LoadUser(account, testProgramID)
	require.ErrorIs(t, err, program.ErrUninitialized)
}
