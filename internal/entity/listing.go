package entity

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

type Listing struct {
	Contract string    `json:"contract"`
	TokenId  uint64    `json:"tokenId"`
	Price    string    `json:"price"`
	Seller   string    `json:"seller"`
	Active   bool      `json:"active"`
	ListedAt time.Time `json:"listedAt"`
}

func (l Listing) Slug() string {
	return CreateListingSlug(l.TokenId, l.Contract)
}

func CreateListingSlug(tokenId uint64, contract string) string {
	return slug.Make(fmt.Sprintf("listing-%d-%s", tokenId, contract))
}
