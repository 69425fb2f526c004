package daemon

import (
	"net/http"

	"github.com/NftDex/marketplace-ledger/internal/api"
	"github.com/NftDex/marketplace-ledger/internal/config"
	"github.com/NftDex/marketplace-ledger/internal/elastic_search"
	"github.com/NftDex/marketplace-ledger/internal/event"
	"github.com/NftDex/marketplace-ledger/internal/indexer"
	"github.com/NftDex/marketplace-ledger/internal/messenger"
	"go.uber.org/zap"
)

type Daemon struct {
	elastic       elastic_search.Index
	actionIndexer indexer.ActionIndexer
	publisher     messenger.Publisher
	server        api.Server
}

func NewDaemon(
	elastic elastic_search.Index,
	actionIndexer indexer.ActionIndexer,
	publisher messenger.Publisher,
	server api.Server,
) *Daemon {
	return &Daemon{elastic, actionIndexer, publisher, server}
}

func (d *Daemon) Execute() {
	d.elastic.InstallMappings()

	event.AddEventListener(event.ListingCreatedEvent, d.actionIndexer.IndexListingCreated)
	event.AddEventListener(event.ListingCanceledEvent, d.actionIndexer.IndexListingCanceled)
	event.AddEventListener(event.ItemPurchasedEvent, d.actionIndexer.IndexItemPurchased)
	event.AddEventListener(event.ProceedsWithdrawnEvent, d.actionIndexer.IndexProceedsWithdrawn)

	event.AddEventListener(event.ItemPurchasedEvent, d.publisher.PublishItemPurchased)
	event.AddEventListener(event.ProceedsWithdrawnEvent, d.publisher.PublishProceedsWithdrawn)

	port := config.Get().ApiPort
	zap.L().With(zap.String("port", port)).Info("Marketplace Api Started")

	if err := http.ListenAndServe(":"+port, d.server.Router()); err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to start api server")
	}
}
