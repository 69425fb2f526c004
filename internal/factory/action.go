package factory

import (
	"time"

	"github.com/NftDex/marketplace-ledger/internal/entity"
	"github.com/NftDex/marketplace-ledger/internal/event"
	"github.com/nu7hatch/gouuid"
)

func CreateListing(ev event.ListingCreated) entity.Listing {
	return entity.Listing{
		Contract: ev.Contract,
		TokenId:  ev.TokenId,
		Price:    ev.Price,
		Seller:   ev.Seller,
		Active:   true,
		ListedAt: time.Now().UTC(),
	}
}

func CreateClosedListing(contract string, tokenId uint64, seller string) entity.Listing {
	return entity.Listing{
		Contract: contract,
		TokenId:  tokenId,
		Seller:   seller,
		Active:   false,
	}
}

func CreateListingAction(ev event.ListingCreated) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		ID:       actionId(),
		Contract: ev.Contract,
		TokenId:  ev.TokenId,
		Action:   entity.ListingAction,
		From:     ev.Seller,
		Amount:   ev.Price,
		Occurred: time.Now().UTC(),
	}
}

func CreateDelistingAction(ev event.ListingCanceled) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		ID:       actionId(),
		Contract: ev.Contract,
		TokenId:  ev.TokenId,
		Action:   entity.DelistingAction,
		From:     ev.Seller,
		Occurred: time.Now().UTC(),
	}
}

func CreateSaleAction(ev event.ItemPurchased) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		ID:       actionId(),
		Contract: ev.Contract,
		TokenId:  ev.TokenId,
		Action:   entity.SaleAction,
		From:     ev.Seller,
		To:       ev.Buyer,
		Amount:   ev.Price,
		Occurred: time.Now().UTC(),
	}
}

func CreateWithdrawalAction(ev event.ProceedsWithdrawn) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		ID:       actionId(),
		Action:   entity.WithdrawalAction,
		To:       ev.Account,
		Amount:   ev.Amount,
		Occurred: time.Now().UTC(),
	}
}

func actionId() string {
	u, _ := uuid.NewV4()
	return u.String()
}
