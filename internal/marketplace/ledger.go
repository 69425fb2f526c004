package marketplace

import (
	"sync"

	"github.com/NftDex/marketplace-ledger/internal/entity"
	"github.com/NftDex/marketplace-ledger/internal/event"
	"github.com/NftDex/marketplace-ledger/internal/payment"
	"github.com/NftDex/marketplace-ledger/internal/registry"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// Listing is an active sale offer for one asset at a fixed price. The zero
// value (price 0) doubles as "not listed"; the ledger never stores a listing
// with a zero price.
type Listing struct {
	Price  *uint256.Int
	Seller string
}

func emptyListing() Listing {
	return Listing{Price: uint256.NewInt(0)}
}

// Ledger owns the listings and the proceeds book. Assets are never escrowed:
// sellers keep custody until the moment of sale, so a listing can go stale
// out-of-band and every transfer is re-validated by the registry itself.
type Ledger struct {
	mu       sync.Mutex
	busy     bool
	listings map[entity.Item]Listing
	proceeds map[string]*uint256.Int
	registry registry.Registry
	payments payment.Service
	operator string
}

func NewLedger(reg registry.Registry, payments payment.Service, operator string) *Ledger {
	return &Ledger{
		listings: make(map[entity.Item]Listing),
		proceeds: make(map[string]*uint256.Int),
		registry: reg,
		payments: payments,
		operator: operator,
	}
}

func (l *Ledger) ListItem(contract string, tokenId uint64, price *uint256.Int, caller string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item := entity.Item{Contract: contract, TokenId: tokenId}
	if _, listed := l.listings[item]; listed {
		return AlreadyListedError{Contract: contract, TokenId: tokenId}
	}

	owner, err := l.registry.OwnerOf(contract, tokenId)
	if err != nil {
		return err
	}
	if owner != caller {
		return ErrNotOwner
	}

	if price == nil || price.IsZero() {
		return ErrPriceMustBeAboveZero
	}

	approved, err := l.registry.GetApproved(contract, tokenId)
	if err != nil {
		return err
	}
	if approved != l.operator {
		return ErrNotApprovedForMarketplace
	}

	l.listings[item] = Listing{Price: price.Clone(), Seller: caller}

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("seller", caller),
		zap.String("price", price.Dec()),
	).Info("Marketplace: Item listed")

	event.EmitEvent(event.ListingCreatedEvent, event.ListingCreated{
		Seller:   caller,
		Contract: contract,
		TokenId:  tokenId,
		Price:    price.Dec(),
	})

	return nil
}

func (l *Ledger) CancelListing(contract string, tokenId uint64, caller string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	owner, err := l.registry.OwnerOf(contract, tokenId)
	if err != nil {
		return err
	}
	if owner != caller {
		return ErrNotOwner
	}

	item := entity.Item{Contract: contract, TokenId: tokenId}
	if _, listed := l.listings[item]; !listed {
		return NotListedError{Contract: contract, TokenId: tokenId}
	}

	delete(l.listings, item)

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("seller", caller),
	).Info("Marketplace: Listing canceled")

	event.EmitEvent(event.ListingCanceledEvent, event.ListingCanceled{
		Seller:   caller,
		Contract: contract,
		TokenId:  tokenId,
	})

	return nil
}

// UpdateListing re-prices an active listing in place. It emits the same event
// type as ListItem; the notification stream does not distinguish a re-price
// from a fresh listing.
func (l *Ledger) UpdateListing(contract string, tokenId uint64, newPrice *uint256.Int, caller string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item := entity.Item{Contract: contract, TokenId: tokenId}
	listing, listed := l.listings[item]
	if !listed {
		return NotListedError{Contract: contract, TokenId: tokenId}
	}

	if l.busy {
		return ErrReentrantCall
	}

	owner, err := l.registry.OwnerOf(contract, tokenId)
	if err != nil {
		return err
	}
	if owner != caller {
		return ErrNotOwner
	}

	if newPrice == nil || newPrice.IsZero() {
		return ErrPriceMustBeAboveZero
	}

	l.listings[item] = Listing{Price: newPrice.Clone(), Seller: listing.Seller}

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("seller", listing.Seller),
		zap.String("price", newPrice.Dec()),
	).Info("Marketplace: Listing re-priced")

	event.EmitEvent(event.ListingCreatedEvent, event.ListingCreated{
		Seller:   listing.Seller,
		Contract: contract,
		TokenId:  tokenId,
		Price:    newPrice.Dec(),
	})

	return nil
}

// BuyItem settles a purchase. The proceeds credit and the listing removal both
// happen before the registry callout, so a transfer that re-enters the ledger
// finds the listing already gone. A failed transfer rolls both back.
//
// The full payment is credited to the seller, overpayment included. No change
// is returned; callers pay exactly the ask unless they mean to tip.
func (l *Ledger) BuyItem(contract string, tokenId uint64, paid *uint256.Int, caller string) error {
	l.mu.Lock()

	item := entity.Item{Contract: contract, TokenId: tokenId}
	listing, listed := l.listings[item]
	if !listed {
		l.mu.Unlock()
		return NotListedError{Contract: contract, TokenId: tokenId}
	}

	owner, err := l.registry.OwnerOf(contract, tokenId)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	if owner == caller {
		l.mu.Unlock()
		return ErrIsOwner
	}

	if l.busy {
		l.mu.Unlock()
		return ErrReentrantCall
	}

	if paid == nil || paid.Lt(listing.Price) {
		l.mu.Unlock()
		return PriceNotMetError{Contract: contract, TokenId: tokenId, Price: listing.Price.Dec()}
	}

	l.busy = true

	prevProceeds := l.proceedsOf(listing.Seller)
	credited := new(uint256.Int).Add(prevProceeds, paid)
	l.proceeds[listing.Seller] = credited
	delete(l.listings, item)

	l.mu.Unlock()

	transferErr := l.registry.Transfer(contract, tokenId, listing.Seller, caller)

	l.mu.Lock()
	defer func() {
		l.busy = false
		l.mu.Unlock()
	}()

	if transferErr != nil {
		l.proceeds[listing.Seller] = prevProceeds
		l.listings[item] = listing

		zap.L().With(
			zap.String("contract", contract),
			zap.Uint64("tokenId", tokenId),
			zap.Error(transferErr),
		).Warn("Marketplace: Purchase rolled back")

		return TransferFailedError{Contract: contract, TokenId: tokenId, Reason: transferErr}
	}

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("seller", listing.Seller),
		zap.String("buyer", caller),
		zap.String("paid", paid.Dec()),
	).Info("Marketplace: Item purchased")

	event.EmitEvent(event.ItemPurchasedEvent, event.ItemPurchased{
		Buyer:    caller,
		Seller:   listing.Seller,
		Contract: contract,
		TokenId:  tokenId,
		Price:    paid.Dec(),
	})

	return nil
}

// WithdrawProceeds zeroes the caller's balance before paying it out; a
// re-entrant withdraw sees nothing left to take. A failed payout restores the
// balance in full.
func (l *Ledger) WithdrawProceeds(caller string) error {
	l.mu.Lock()

	if l.busy {
		l.mu.Unlock()
		return ErrReentrantCall
	}

	balance := l.proceedsOf(caller)
	if balance.IsZero() {
		l.mu.Unlock()
		return ErrNoProceeds
	}

	l.busy = true
	l.proceeds[caller] = uint256.NewInt(0)

	l.mu.Unlock()

	payErr := l.payments.Pay(caller, balance.Clone())

	l.mu.Lock()
	defer func() {
		l.busy = false
		l.mu.Unlock()
	}()

	if payErr != nil {
		l.proceeds[caller] = balance

		zap.L().With(zap.String("account", caller), zap.Error(payErr)).
			Warn("Marketplace: Withdrawal rolled back")

		return PayoutFailedError{Account: caller, Reason: payErr}
	}

	zap.L().With(
		zap.String("account", caller),
		zap.String("amount", balance.Dec()),
	).Info("Marketplace: Proceeds withdrawn")

	event.EmitEvent(event.ProceedsWithdrawnEvent, event.ProceedsWithdrawn{
		Account: caller,
		Amount:  balance.Dec(),
	})

	return nil
}

// GetListing returns the active listing, or the zero listing when the item is
// not listed. "Never listed" and "listing removed" are indistinguishable.
func (l *Ledger) GetListing(contract string, tokenId uint64) Listing {
	l.mu.Lock()
	defer l.mu.Unlock()

	listing, listed := l.listings[entity.Item{Contract: contract, TokenId: tokenId}]
	if !listed {
		return emptyListing()
	}

	return Listing{Price: listing.Price.Clone(), Seller: listing.Seller}
}

func (l *Ledger) GetProceeds(account string) *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.proceedsOf(account)
}

// proceedsOf returns a copy; callers must not hand internal amounts out.
func (l *Ledger) proceedsOf(account string) *uint256.Int {
	balance, exists := l.proceeds[account]
	if !exists {
		return uint256.NewInt(0)
	}

	return balance.Clone()
}
