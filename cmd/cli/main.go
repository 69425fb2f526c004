package main

import (
	"fmt"
	"os"

	"github.com/NftDex/marketplace-ledger/generated/dic"
	"github.com/NftDex/marketplace-ledger/internal/config"
	"github.com/NftDex/marketplace-ledger/internal/marketplace"
	"github.com/NftDex/marketplace-ledger/internal/payment"
	"github.com/NftDex/marketplace-ledger/internal/registry"
	"github.com/NftDex/marketplace-ledger/internal/repository"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	container   *dic.Container
	listingRepo repository.ListingRepository
	actionRepo  repository.ActionRepository
)

func main() {
	config.Init("cli")

	container, _ = dic.NewContainer()
	listingRepo = container.GetListingRepo()
	actionRepo = container.GetActionRepo()

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:   "listings",
				Usage:  "Show the active listings of a seller",
				Action: showListings,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "seller", Value: "", Usage: "seller account"},
				},
			},
			{
				Name:   "actions",
				Usage:  "Show the marketplace history of an item",
				Action: showActions,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "contract", Value: "", Usage: "collection contract"},
					&cli.Uint64Flag{Name: "tokenId", Value: 0, Usage: "token id"},
				},
			},
			{
				Name:   "simulate",
				Usage:  "Run a list-buy-withdraw round trip on an in-memory ledger",
				Action: simulate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		zap.L().With(zap.Error(err)).Fatal("CLI: command failed")
	}
}

func showListings(c *cli.Context) error {
	listings, err := listingRepo.GetActiveBySeller(c.String("seller"))
	if err != nil {
		return err
	}

	for _, listing := range listings {
		fmt.Printf("%s/%d price=%s listedAt=%s\n", listing.Contract, listing.TokenId, listing.Price, listing.ListedAt)
	}

	return nil
}

func showActions(c *cli.Context) error {
	actions, err := actionRepo.GetActions(c.String("contract"), c.Uint64("tokenId"))
	if err != nil {
		return err
	}

	for _, action := range actions {
		fmt.Printf("%s %s from=%s to=%s amount=%s at=%s\n", action.ID, action.Action, action.From, action.To, action.Amount, action.Occurred)
	}

	return nil
}

func simulate(c *cli.Context) error {
	const (
		contract = "0xduckpond"
		tokenId  = uint64(5)
		seller   = "seller"
		buyer    = "buyer"
	)

	operator := config.Get().Marketplace.Operator

	reg := registry.NewMemoryRegistry()
	bank := payment.NewMemoryBank()
	ledger := marketplace.NewLedger(reg, bank, operator)

	if err := reg.Mint(contract, tokenId, seller); err != nil {
		return err
	}
	if err := reg.Approve(contract, tokenId, operator, seller); err != nil {
		return err
	}

	price := uint256.NewInt(100)
	if err := ledger.ListItem(contract, tokenId, price, seller); err != nil {
		return err
	}
	fmt.Printf("listed %s/%d at %s\n", contract, tokenId, price.Dec())

	if err := ledger.BuyItem(contract, tokenId, price, buyer); err != nil {
		return err
	}
	owner, _ := reg.OwnerOf(contract, tokenId)
	fmt.Printf("sold to %s, proceeds %s\n", owner, ledger.GetProceeds(seller).Dec())

	if err := ledger.WithdrawProceeds(seller); err != nil {
		return err
	}
	fmt.Printf("withdrawn, bank balance %s, proceeds %s\n", bank.Balance(seller).Dec(), ledger.GetProceeds(seller).Dec())

	return nil
}
