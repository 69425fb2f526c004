package marketplace

import (
	"errors"
	"fmt"
)

var (
	ErrNotOwner                  = errors.New("caller is not the asset owner")
	ErrIsOwner                   = errors.New("caller is the asset owner")
	ErrPriceMustBeAboveZero      = errors.New("price must be above zero")
	ErrNotApprovedForMarketplace = errors.New("marketplace is not approved to transfer the asset")
	ErrNoProceeds                = errors.New("no proceeds to withdraw")
	ErrReentrantCall             = errors.New("re-entrant call rejected")
)

type AlreadyListedError struct {
	Contract string
	TokenId  uint64
}

func (e AlreadyListedError) Error() string {
	return fmt.Sprintf("item %d on %s is already listed", e.TokenId, e.Contract)
}

type NotListedError struct {
	Contract string
	TokenId  uint64
}

func (e NotListedError) Error() string {
	return fmt.Sprintf("item %d on %s is not listed", e.TokenId, e.Contract)
}

// PriceNotMetError reports the ask the buyer failed to meet, so the caller can
// correct the payment without a further query.
type PriceNotMetError struct {
	Contract string
	TokenId  uint64
	Price    string
}

func (e PriceNotMetError) Error() string {
	return fmt.Sprintf("price not met for item %d on %s, asking %s", e.TokenId, e.Contract, e.Price)
}

type TransferFailedError struct {
	Contract string
	TokenId  uint64
	Reason   error
}

func (e TransferFailedError) Error() string {
	return fmt.Sprintf("asset transfer failed for item %d on %s: %v", e.TokenId, e.Contract, e.Reason)
}

func (e TransferFailedError) Unwrap() error {
	return e.Reason
}

type PayoutFailedError struct {
	Account string
	Reason  error
}

func (e PayoutFailedError) Error() string {
	return fmt.Sprintf("payout to %s failed: %v", e.Account, e.Reason)
}

func (e PayoutFailedError) Unwrap() error {
	return e.Reason
}
