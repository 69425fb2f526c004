package entity

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

type ActionType string

const (
	ListingAction    ActionType = "listing"
	DelistingAction  ActionType = "delisting"
	SaleAction       ActionType = "sale"
	WithdrawalAction ActionType = "withdrawal"
)

// MarketplaceAction is one entry of the append-only marketplace history.
type MarketplaceAction struct {
	ID       string     `json:"id"`
	Contract string     `json:"contract,omitempty"`
	TokenId  uint64     `json:"tokenId,omitempty"`
	Action   ActionType `json:"action"`
	From     string     `json:"from,omitempty"`
	To       string     `json:"to,omitempty"`
	Amount   string     `json:"amount,omitempty"`
	Occurred time.Time  `json:"occurred"`
}

func (a MarketplaceAction) Slug() string {
	return slug.Make(fmt.Sprintf("action-%s", a.ID))
}
