package repository

import (
	"encoding/json"

	"github.com/NftDex/marketplace-ledger/internal/elastic_search"
	"github.com/NftDex/marketplace-ledger/internal/entity"
	"github.com/olivere/elastic/v7"
)

type ActionRepository interface {
	GetActions(contract string, tokenId uint64) ([]entity.MarketplaceAction, error)
	GetActionsByAccount(account string) ([]entity.MarketplaceAction, error)
}

type actionRepository struct {
	elastic elastic_search.Index
}

func NewActionRepository(elastic elastic_search.Index) ActionRepository {
	return actionRepository{elastic}
}

func (r actionRepository) GetActions(contract string, tokenId uint64) ([]entity.MarketplaceAction, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("contract.keyword", contract),
		elastic.NewTermQuery("tokenId", tokenId),
	)

	result, err := search(r.elastic.GetClient().
		Search(elastic_search.MarketplaceActionIndex.Get()).
		Query(query).
		Sort("occurred", false).
		Size(100))

	return r.findMany(result, err)
}

func (r actionRepository) GetActionsByAccount(account string) ([]entity.MarketplaceAction, error) {
	query := elastic.NewBoolQuery().Should(
		elastic.NewTermQuery("from.keyword", account),
		elastic.NewTermQuery("to.keyword", account),
	).MinimumNumberShouldMatch(1)

	result, err := search(r.elastic.GetClient().
		Search(elastic_search.MarketplaceActionIndex.Get()).
		Query(query).
		Sort("occurred", false).
		Size(100))

	return r.findMany(result, err)
}

func (r actionRepository) findMany(results *elastic.SearchResult, err error) ([]entity.MarketplaceAction, error) {
	actions := make([]entity.MarketplaceAction, 0)
	if err != nil {
		return actions, err
	}

	for _, hit := range results.Hits.Hits {
		var action entity.MarketplaceAction
		if err := json.Unmarshal(hit.Source, &action); err != nil {
			return actions, err
		}
		actions = append(actions, action)
	}

	return actions, nil
}
