package registry

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrNotApproved   = errors.New("transfer not approved")
	ErrWrongOwner    = errors.New("from account is not the current owner")
)

// Registry is the narrow capability the marketplace consumes from an asset
// registry. The registry stays the authority for custody; the marketplace
// never escrows assets.
type Registry interface {
	OwnerOf(contract string, tokenId uint64) (string, error)
	GetApproved(contract string, tokenId uint64) (string, error)
	Transfer(contract string, tokenId uint64, from, to string) error
}
