package elastic_search

import (
	"fmt"

	"github.com/NftDex/marketplace-ledger/internal/config"
)

type Indices string

var (
	ListingIndex           Indices = "listing"
	MarketplaceActionIndex Indices = "marketplaceaction"
)

// Get prefixes the index with the network and deployment name.
func (i *Indices) Get() string {
	return fmt.Sprintf("%s.%s.%s", config.Get().Network, config.Get().Index, string(*i))
}
