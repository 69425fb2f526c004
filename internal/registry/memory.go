package registry

import (
	"errors"
	"sync"

	"github.com/NftDex/marketplace-ledger/internal/entity"
)

var ErrAlreadyMinted = errors.New("token already minted")

// TransferHook runs before custody changes hands. A non-nil error aborts the
// transfer. The registry may call back into the marketplace from here, which
// is exactly the re-entrancy window the ledger has to survive.
type TransferHook func(contract string, tokenId uint64, from, to string) error

// MemoryRegistry is an in-process token registry. It backs the tests and the
// single-process simulation mode; remote deployments use the rpc client.
type MemoryRegistry struct {
	mu        sync.Mutex
	owners    map[entity.Item]string
	approvals map[entity.Item]string
	hook      TransferHook
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		owners:    make(map[entity.Item]string),
		approvals: make(map[entity.Item]string),
	}
}

func (r *MemoryRegistry) SetTransferHook(hook TransferHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hook = hook
}

func (r *MemoryRegistry) Mint(contract string, tokenId uint64, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := entity.Item{Contract: contract, TokenId: tokenId}
	if _, exists := r.owners[item]; exists {
		return ErrAlreadyMinted
	}

	r.owners[item] = owner
	return nil
}

func (r *MemoryRegistry) Approve(contract string, tokenId uint64, operator, caller string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := entity.Item{Contract: contract, TokenId: tokenId}
	owner, exists := r.owners[item]
	if !exists {
		return ErrAssetNotFound
	}
	if owner != caller {
		return ErrWrongOwner
	}

	if operator == "" {
		delete(r.approvals, item)
	} else {
		r.approvals[item] = operator
	}
	return nil
}

func (r *MemoryRegistry) OwnerOf(contract string, tokenId uint64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, exists := r.owners[entity.Item{Contract: contract, TokenId: tokenId}]
	if !exists {
		return "", ErrAssetNotFound
	}

	return owner, nil
}

func (r *MemoryRegistry) GetApproved(contract string, tokenId uint64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.owners[entity.Item{Contract: contract, TokenId: tokenId}]; !exists {
		return "", ErrAssetNotFound
	}

	return r.approvals[entity.Item{Contract: contract, TokenId: tokenId}], nil
}

func (r *MemoryRegistry) Transfer(contract string, tokenId uint64, from, to string) error {
	item := entity.Item{Contract: contract, TokenId: tokenId}

	r.mu.Lock()
	owner, exists := r.owners[item]
	if !exists {
		r.mu.Unlock()
		return ErrAssetNotFound
	}
	if owner != from {
		r.mu.Unlock()
		return ErrWrongOwner
	}
	if _, approved := r.approvals[item]; !approved {
		r.mu.Unlock()
		return ErrNotApproved
	}
	hook := r.hook
	r.mu.Unlock()

	if hook != nil {
		if err := hook(contract, tokenId, from, to); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[item] = to
	delete(r.approvals, item)
	return nil
}
