package di

import (
	"github.com/NftDex/marketplace-ledger/internal/api"
	"github.com/NftDex/marketplace-ledger/internal/config"
	"github.com/NftDex/marketplace-ledger/internal/daemon"
	"github.com/NftDex/marketplace-ledger/internal/elastic_search"
	"github.com/NftDex/marketplace-ledger/internal/indexer"
	"github.com/NftDex/marketplace-ledger/internal/marketplace"
	"github.com/NftDex/marketplace-ledger/internal/messenger"
	"github.com/NftDex/marketplace-ledger/internal/payment"
	"github.com/NftDex/marketplace-ledger/internal/registry"
	"github.com/NftDex/marketplace-ledger/internal/repository"
	"github.com/sarulabs/dingo/v4"
	"go.uber.org/zap"
)

var Definitions = []dingo.Def{
	{
		Name: "elastic",
		Build: func() (elastic_search.Index, error) {
			elastic, err := elastic_search.New()
			if err != nil {
				zap.L().With(zap.Error(err)).Fatal("Failed to start ES")
			}

			return elastic, nil
		},
	},
	{
		Name: "registry",
		Build: func() (registry.Registry, error) {
			cfg := config.Get().Registry
			if cfg.Url == "" {
				zap.L().Info("Using in-memory asset registry")
				return registry.NewMemoryRegistry(), nil
			}

			return registry.NewRpcRegistry(cfg.Url, cfg.Timeout, cfg.CacheTtl, cfg.Debug)
		},
	},
	{
		Name: "payments",
		Build: func() (payment.Service, error) {
			return payment.NewMemoryBank(), nil
		},
	},
	{
		Name: "ledger",
		Build: func(reg registry.Registry, payments payment.Service) (*marketplace.Ledger, error) {
			return marketplace.NewLedger(reg, payments, config.Get().Marketplace.Operator), nil
		},
	},
	{
		Name: "action.indexer",
		Build: func(elastic elastic_search.Index) (indexer.ActionIndexer, error) {
			return indexer.NewActionIndexer(elastic), nil
		},
	},
	{
		Name: "listing.repo",
		Build: func(elastic elastic_search.Index) (repository.ListingRepository, error) {
			return repository.NewListingRepository(elastic), nil
		},
	},
	{
		Name: "action.repo",
		Build: func(elastic elastic_search.Index) (repository.ActionRepository, error) {
			return repository.NewActionRepository(elastic), nil
		},
	},
	{
		Name: "messenger",
		Build: func() (messenger.MessageService, error) {
			return messenger.NewMessenger(), nil
		},
	},
	{
		Name: "publisher",
		Build: func(service messenger.MessageService) (messenger.Publisher, error) {
			return messenger.NewPublisher(service), nil
		},
	},
	{
		Name: "api.server",
		Build: func(
			ledger *marketplace.Ledger,
			listingRepo repository.ListingRepository,
			actionRepo repository.ActionRepository,
		) (api.Server, error) {
			return api.NewServer(ledger, listingRepo, actionRepo), nil
		},
	},
	{
		Name: "daemon",
		Build: func(
			elastic elastic_search.Index,
			actionIndexer indexer.ActionIndexer,
			publisher messenger.Publisher,
			server api.Server,
		) (*daemon.Daemon, error) {
			return daemon.NewDaemon(elastic, actionIndexer, publisher, server), nil
		},
	},
}
