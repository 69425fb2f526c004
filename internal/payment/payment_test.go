package payment

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPay(t *testing.T) {
	bank := NewMemoryBank()

	require.NoError(t, bank.Pay("alice", uint256.NewInt(100)))
	require.NoError(t, bank.Pay("alice", uint256.NewInt(50)))

	assert.Equal(t, "150", bank.Balance("alice").Dec())
	assert.True(t, bank.Balance("bob").IsZero())
}

func TestPay_Failure(t *testing.T) {
	bank := NewMemoryBank()
	failure := errors.New("rail down")

	bank.SetFailure(failure)
	require.ErrorIs(t, bank.Pay("alice", uint256.NewInt(100)), failure)
	assert.True(t, bank.Balance("alice").IsZero())

	bank.SetFailure(nil)
	require.NoError(t, bank.Pay("alice", uint256.NewInt(100)))
	assert.Equal(t, "100", bank.Balance("alice").Dec())
}

func TestBalance_ReturnsCopy(t *testing.T) {
	bank := NewMemoryBank()
	require.NoError(t, bank.Pay("alice", uint256.NewInt(100)))

	balance := bank.Balance("alice")
	balance.SetUint64(999)

	assert.Equal(t, "100", bank.Balance("alice").Dec())
}
