package event

type Type string

const (
	ListingCreatedEvent    Type = "ListingCreatedEvent"
	ListingCanceledEvent   Type = "ListingCanceledEvent"
	ItemPurchasedEvent     Type = "ItemPurchasedEvent"
	ProceedsWithdrawnEvent Type = "ProceedsWithdrawnEvent"
)

// ListingCreated is emitted for new listings and for re-priced listings alike.
// The stream does not distinguish the two cases.
type ListingCreated struct {
	Seller   string `json:"seller"`
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	Price    string `json:"price"`
}

type ListingCanceled struct {
	Seller   string `json:"seller"`
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
}

// ItemPurchased's Price is the settled payment, not the listed ask. The two
// differ when the buyer overpays; the full payment is what the seller is
// credited, so that is what the stream reports.
type ItemPurchased struct {
	Buyer    string `json:"buyer"`
	Seller   string `json:"seller"`
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	Price    string `json:"price"`
}

type ProceedsWithdrawn struct {
	Account string `json:"account"`
	Amount  string `json:"amount"`
}
