package indexer

import (
	"github.com/NftDex/marketplace-ledger/internal/elastic_search"
	"github.com/NftDex/marketplace-ledger/internal/event"
	"github.com/NftDex/marketplace-ledger/internal/factory"
	"go.uber.org/zap"
)

// ActionIndexer projects the notification stream into elasticsearch: a
// listing index mirroring the current offers, and an append-only action log.
type ActionIndexer interface {
	IndexListingCreated(msg interface{})
	IndexListingCanceled(msg interface{})
	IndexItemPurchased(msg interface{})
	IndexProceedsWithdrawn(msg interface{})
}

type actionIndexer struct {
	elastic elastic_search.Index
}

func NewActionIndexer(elastic elastic_search.Index) ActionIndexer {
	return actionIndexer{elastic}
}

func (i actionIndexer) IndexListingCreated(msg interface{}) {
	ev, ok := msg.(event.ListingCreated)
	if !ok {
		zap.L().Error("ActionIndexer: Unexpected ListingCreated payload")
		return
	}

	i.elastic.AddIndexRequest(elastic_search.ListingIndex.Get(), factory.CreateListing(ev), elastic_search.ListingCreate)
	i.elastic.AddIndexRequest(elastic_search.MarketplaceActionIndex.Get(), factory.CreateListingAction(ev), elastic_search.ActionCreate)
	i.elastic.Persist()
}

func (i actionIndexer) IndexListingCanceled(msg interface{}) {
	ev, ok := msg.(event.ListingCanceled)
	if !ok {
		zap.L().Error("ActionIndexer: Unexpected ListingCanceled payload")
		return
	}

	i.elastic.AddIndexRequest(elastic_search.ListingIndex.Get(), factory.CreateClosedListing(ev.Contract, ev.TokenId, ev.Seller), elastic_search.ListingClose)
	i.elastic.AddIndexRequest(elastic_search.MarketplaceActionIndex.Get(), factory.CreateDelistingAction(ev), elastic_search.ActionCreate)
	i.elastic.Persist()
}

func (i actionIndexer) IndexItemPurchased(msg interface{}) {
	ev, ok := msg.(event.ItemPurchased)
	if !ok {
		zap.L().Error("ActionIndexer: Unexpected ItemPurchased payload")
		return
	}

	i.elastic.AddIndexRequest(elastic_search.ListingIndex.Get(), factory.CreateClosedListing(ev.Contract, ev.TokenId, ev.Seller), elastic_search.ListingClose)
	i.elastic.AddIndexRequest(elastic_search.MarketplaceActionIndex.Get(), factory.CreateSaleAction(ev), elastic_search.ActionCreate)
	i.elastic.Persist()
}

func (i actionIndexer) IndexProceedsWithdrawn(msg interface{}) {
	ev, ok := msg.(event.ProceedsWithdrawn)
	if !ok {
		zap.L().Error("ActionIndexer: Unexpected ProceedsWithdrawn payload")
		return
	}

	i.elastic.AddIndexRequest(elastic_search.MarketplaceActionIndex.Get(), factory.CreateWithdrawalAction(ev), elastic_search.ActionCreate)
	i.elastic.Persist()
}
