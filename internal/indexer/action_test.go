package indexer

import (
	"testing"

	"github.com/NftDex/marketplace-ledger/internal/elastic_search"
	"github.com/NftDex/marketplace-ledger/internal/entity"
	"github.com/NftDex/marketplace-ledger/internal/event"
	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIndex struct {
	requests  []elastic_search.Request
	persisted int
}

func (f *fakeIndex) GetClient() *elastic.Client { return nil }
func (f *fakeIndex) InstallMappings()           {}

func (f *fakeIndex) AddIndexRequest(index string, entity entity.Entity, reqAction elastic_search.RequestAction) {
	f.requests = append(f.requests, elastic_search.Request{Index: index, Entity: entity, Type: elastic_search.IndexRequest, Action: reqAction})
}

func (f *fakeIndex) AddUpdateRequest(index string, entity entity.Entity, reqAction elastic_search.RequestAction) {
	f.requests = append(f.requests, elastic_search.Request{Index: index, Entity: entity, Type: elastic_search.UpdateRequest, Action: reqAction})
}

func (f *fakeIndex) HasRequest(entity entity.Entity) bool      { return false }
func (f *fakeIndex) GetRequests() []elastic_search.Request     { return f.requests }
func (f *fakeIndex) ClearRequests()                            { f.requests = nil }
func (f *fakeIndex) Save(index string, entity entity.Entity)   {}
func (f *fakeIndex) BatchPersist() bool                        { return false }

func (f *fakeIndex) Persist() int {
	f.persisted++
	return len(f.requests)
}

func TestIndexListingCreated(t *testing.T) {
	idx := &fakeIndex{}
	indexer := NewActionIndexer(idx)

	indexer.IndexListingCreated(event.ListingCreated{Seller: "alice", Contract: "0xduckpond", TokenId: 5, Price: "100"})

	require.Len(t, idx.requests, 2)

	listing, ok := idx.requests[0].Entity.(entity.Listing)
	require.True(t, ok)
	assert.True(t, listing.Active)
	assert.Equal(t, "100", listing.Price)

	action, ok := idx.requests[1].Entity.(entity.MarketplaceAction)
	require.True(t, ok)
	assert.Equal(t, entity.ListingAction, action.Action)
	assert.Equal(t, 1, idx.persisted)
}

func TestIndexItemPurchased(t *testing.T) {
	idx := &fakeIndex{}
	indexer := NewActionIndexer(idx)

	indexer.IndexItemPurchased(event.ItemPurchased{Buyer: "bob", Seller: "alice", Contract: "0xduckpond", TokenId: 5, Price: "150"})

	require.Len(t, idx.requests, 2)

	listing, ok := idx.requests[0].Entity.(entity.Listing)
	require.True(t, ok)
	assert.False(t, listing.Active)

	action, ok := idx.requests[1].Entity.(entity.MarketplaceAction)
	require.True(t, ok)
	assert.Equal(t, entity.SaleAction, action.Action)
	assert.Equal(t, "bob", action.To)
}

func TestIndexUnexpectedPayloadIgnored(t *testing.T) {
	idx := &fakeIndex{}
	indexer := NewActionIndexer(idx)

	indexer.IndexListingCreated("not an event")

	assert.Empty(t, idx.requests)
	assert.Zero(t, idx.persisted)
}
