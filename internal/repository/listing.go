package repository

import (
	"encoding/json"
	"errors"

	"github.com/NftDex/marketplace-ledger/internal/elastic_search"
	"github.com/NftDex/marketplace-ledger/internal/entity"
	"github.com/olivere/elastic/v7"
)

var ErrListingNotFound = errors.New("listing not found")

// ListingRepository reads the search projection of listings. The projection is
// eventually consistent; the ledger stays the authority.
type ListingRepository interface {
	GetListing(contract string, tokenId uint64) (entity.Listing, error)
	GetActiveBySeller(seller string) ([]entity.Listing, error)
	GetActiveByContract(contract string) ([]entity.Listing, error)
}

type listingRepository struct {
	elastic elastic_search.Index
}

func NewListingRepository(elastic elastic_search.Index) ListingRepository {
	return listingRepository{elastic}
}

func (r listingRepository) GetListing(contract string, tokenId uint64) (entity.Listing, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("contract.keyword", contract),
		elastic.NewTermQuery("tokenId", tokenId),
	)

	result, err := search(r.elastic.GetClient().
		Search(elastic_search.ListingIndex.Get()).
		Query(query).
		Size(1))

	return r.findOne(result, err)
}

func (r listingRepository) GetActiveBySeller(seller string) ([]entity.Listing, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("seller.keyword", seller),
		elastic.NewTermQuery("active", true),
	)

	result, err := search(r.elastic.GetClient().
		Search(elastic_search.ListingIndex.Get()).
		Query(query).
		Sort("listedAt", false).
		Size(100))

	return r.findMany(result, err)
}

func (r listingRepository) GetActiveByContract(contract string) ([]entity.Listing, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewTermQuery("contract.keyword", contract),
		elastic.NewTermQuery("active", true),
	)

	result, err := search(r.elastic.GetClient().
		Search(elastic_search.ListingIndex.Get()).
		Query(query).
		Sort("tokenId", true).
		Size(100))

	return r.findMany(result, err)
}

func (r listingRepository) findOne(results *elastic.SearchResult, err error) (entity.Listing, error) {
	if err != nil {
		return entity.Listing{}, err
	}

	if len(results.Hits.Hits) == 0 {
		return entity.Listing{}, ErrListingNotFound
	}

	var listing entity.Listing
	hit := results.Hits.Hits[0]
	err = json.Unmarshal(hit.Source, &listing)

	return listing, err
}

func (r listingRepository) findMany(results *elastic.SearchResult, err error) ([]entity.Listing, error) {
	listings := make([]entity.Listing, 0)
	if err != nil {
		return listings, err
	}

	for _, hit := range results.Hits.Hits {
		var listing entity.Listing
		if err := json.Unmarshal(hit.Source, &listing); err != nil {
			return listings, err
		}
		listings = append(listings, listing)
	}

	return listings, nil
}
