package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	contract = "0xduckpond"
	tokenId  = uint64(5)
	owner    = "alice"
	operator = "marketplace"
)

func TestMint(t *testing.T) {
	reg := NewMemoryRegistry()

	require.NoError(t, reg.Mint(contract, tokenId, owner))

	got, err := reg.OwnerOf(contract, tokenId)
	require.NoError(t, err)
	assert.Equal(t, owner, got)
}

func TestMint_Duplicate(t *testing.T) {
	reg := NewMemoryRegistry()
	require.NoError(t, reg.Mint(contract, tokenId, owner))

	require.ErrorIs(t, reg.Mint(contract, tokenId, "bob"), ErrAlreadyMinted)
}

func TestOwnerOf_Unknown(t *testing.T) {
	reg := NewMemoryRegistry()

	_, err := reg.OwnerOf(contract, tokenId)
	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestApprove(t *testing.T) {
	reg := NewMemoryRegistry()
	require.NoError(t, reg.Mint(contract, tokenId, owner))

	require.NoError(t, reg.Approve(contract, tokenId, operator, owner))

	approved, err := reg.GetApproved(contract, tokenId)
	require.NoError(t, err)
	assert.Equal(t, operator, approved)
}

func TestApprove_OnlyOwner(t *testing.T) {
	reg := NewMemoryRegistry()
	require.NoError(t, reg.Mint(contract, tokenId, owner))

	require.ErrorIs(t, reg.Approve(contract, tokenId, operator, "mallory"), ErrWrongOwner)
}

func TestApprove_Revoke(t *testing.T) {
	reg := NewMemoryRegistry()
	require.NoError(t, reg.Mint(contract, tokenId, owner))
	require.NoError(t, reg.Approve(contract, tokenId, operator, owner))

	require.NoError(t, reg.Approve(contract, tokenId, "", owner))

	approved, err := reg.GetApproved(contract, tokenId)
	require.NoError(t, err)
	assert.Equal(t, "", approved)
}

func TestTransfer(t *testing.T) {
	reg := NewMemoryRegistry()
	require.NoError(t, reg.Mint(contract, tokenId, owner))
	require.NoError(t, reg.Approve(contract, tokenId, operator, owner))

	require.NoError(t, reg.Transfer(contract, tokenId, owner, "bob"))

	got, err := reg.OwnerOf(contract, tokenId)
	require.NoError(t, err)
	assert.Equal(t, "bob", got)

	// Approval does not survive a transfer.
	approved, err := reg.GetApproved(contract, tokenId)
	require.NoError(t, err)
	assert.Equal(t, "", approved)
}

func TestTransfer_WrongOwner(t *testing.T) {
	reg := NewMemoryRegistry()
	require.NoError(t, reg.Mint(contract, tokenId, owner))
	require.NoError(t, reg.Approve(contract, tokenId, operator, owner))

	require.ErrorIs(t, reg.Transfer(contract, tokenId, "mallory", "bob"), ErrWrongOwner)
}

func TestTransfer_NotApproved(t *testing.T) {
	reg := NewMemoryRegistry()
	require.NoError(t, reg.Mint(contract, tokenId, owner))

	require.ErrorIs(t, reg.Transfer(contract, tokenId, owner, "bob"), ErrNotApproved)
}

func TestTransfer_HookErrorAbortsCustodyChange(t *testing.T) {
	reg := NewMemoryRegistry()
	require.NoError(t, reg.Mint(contract, tokenId, owner))
	require.NoError(t, reg.Approve(contract, tokenId, operator, owner))

	hookErr := errors.New("receiver rejected the token")
	reg.SetTransferHook(func(contract string, tokenId uint64, from, to string) error {
		return hookErr
	})

	require.ErrorIs(t, reg.Transfer(contract, tokenId, owner, "bob"), hookErr)

	got, err := reg.OwnerOf(contract, tokenId)
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	approved, err := reg.GetApproved(contract, tokenId)
	require.NoError(t, err)
	assert.Equal(t, operator, approved)
}
