package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/NftDex/marketplace-ledger/internal/marketplace"
	"github.com/NftDex/marketplace-ledger/internal/repository"
	"github.com/gorilla/mux"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

const accountHeader = "X-Account"

type Server struct {
	ledger      *marketplace.Ledger
	listingRepo repository.ListingRepository
	actionRepo  repository.ActionRepository
}

func NewServer(ledger *marketplace.Ledger, listingRepo repository.ListingRepository, actionRepo repository.ActionRepository) Server {
	return Server{ledger, listingRepo, actionRepo}
}

type listingRequest struct {
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	Price    string `json:"price"`
}

type purchaseRequest struct {
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	Payment  string `json:"payment"`
}

type listingResponse struct {
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	Price    string `json:"price"`
	Seller   string `json:"seller,omitempty"`
}

type proceedsResponse struct {
	Account  string `json:"account"`
	Proceeds string `json:"proceeds"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	r.HandleFunc("/listing/{contract}/{tokenId}", s.handleGetListing).Methods("GET")
	r.HandleFunc("/proceeds/{account}", s.handleGetProceeds).Methods("GET")
	r.HandleFunc("/listings/seller/{seller}", s.handleGetListingsBySeller).Methods("GET")
	r.HandleFunc("/actions/{contract}/{tokenId}", s.handleGetActions).Methods("GET")

	r.HandleFunc("/listing", s.handleCreateListing).Methods("POST")
	r.HandleFunc("/listing", s.handleUpdateListing).Methods("PUT")
	r.HandleFunc("/listing/{contract}/{tokenId}", s.handleCancelListing).Methods("DELETE")
	r.HandleFunc("/purchase", s.handlePurchase).Methods("POST")
	r.HandleFunc("/withdraw", s.handleWithdraw).Methods("POST")

	return r
}

func (s Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

func (s Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	contract := mux.Vars(r)["contract"]
	tokenId, err := getTokenId(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	listing := s.ledger.GetListing(contract, tokenId)

	writeJson(w, http.StatusOK, listingResponse{
		Contract: contract,
		TokenId:  tokenId,
		Price:    listing.Price.Dec(),
		Seller:   listing.Seller,
	})
}

func (s Server) handleGetProceeds(w http.ResponseWriter, r *http.Request) {
	account := mux.Vars(r)["account"]

	writeJson(w, http.StatusOK, proceedsResponse{
		Account:  account,
		Proceeds: s.ledger.GetProceeds(account).Dec(),
	})
}

func (s Server) handleGetListingsBySeller(w http.ResponseWriter, r *http.Request) {
	listings, err := s.listingRepo.GetActiveBySeller(mux.Vars(r)["seller"])
	if err != nil {
		zap.L().With(zap.Error(err)).Error("Api: Failed to get listings")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, http.StatusOK, listings)
}

func (s Server) handleGetActions(w http.ResponseWriter, r *http.Request) {
	contract := mux.Vars(r)["contract"]
	tokenId, err := getTokenId(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	actions, err := s.actionRepo.GetActions(contract, tokenId)
	if err != nil {
		zap.L().With(zap.Error(err)).Error("Api: Failed to get actions")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, http.StatusOK, actions)
}

func (s Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	caller, ok := getCaller(w, r)
	if !ok {
		return
	}

	var req listingRequest
	if !readJson(w, r, &req) {
		return
	}

	price, err := parseAmount(req.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.ledger.ListItem(req.Contract, req.TokenId, price, caller); err != nil {
		writeLedgerError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s Server) handleUpdateListing(w http.ResponseWriter, r *http.Request) {
	caller, ok := getCaller(w, r)
	if !ok {
		return
	}

	var req listingRequest
	if !readJson(w, r, &req) {
		return
	}

	price, err := parseAmount(req.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.ledger.UpdateListing(req.Contract, req.TokenId, price, caller); err != nil {
		writeLedgerError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handleCancelListing(w http.ResponseWriter, r *http.Request) {
	caller, ok := getCaller(w, r)
	if !ok {
		return
	}

	contract := mux.Vars(r)["contract"]
	tokenId, err := getTokenId(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.ledger.CancelListing(contract, tokenId, caller); err != nil {
		writeLedgerError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	caller, ok := getCaller(w, r)
	if !ok {
		return
	}

	var req purchaseRequest
	if !readJson(w, r, &req) {
		return
	}

	payment, err := parseAmount(req.Payment)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.ledger.BuyItem(req.Contract, req.TokenId, payment, caller); err != nil {
		writeLedgerError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := getCaller(w, r)
	if !ok {
		return
	}

	if err := s.ledger.WithdrawProceeds(caller); err != nil {
		writeLedgerError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func getCaller(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller := r.Header.Get(accountHeader)
	if caller == "" {
		writeError(w, http.StatusUnauthorized, errors.New("missing X-Account header"))
		return "", false
	}

	return caller, true
}

func getTokenId(r *http.Request) (uint64, error) {
	tokenId, ok := mux.Vars(r)["tokenId"]
	if !ok {
		return 0, errors.New("invalid parameters")
	}

	return strconv.ParseUint(tokenId, 10, 64)
}

func parseAmount(value string) (*uint256.Int, error) {
	if value == "" {
		return nil, errors.New("missing amount")
	}

	return uint256.FromDecimal(value)
}

func writeLedgerError(w http.ResponseWriter, err error) {
	writeError(w, ledgerStatus(err), err)
}

func ledgerStatus(err error) int {
	var alreadyListed marketplace.AlreadyListedError
	var notListed marketplace.NotListedError
	var priceNotMet marketplace.PriceNotMetError

	switch {
	case errors.As(err, &alreadyListed):
		return http.StatusConflict
	case errors.As(err, &notListed):
		return http.StatusNotFound
	case errors.As(err, &priceNotMet):
		return http.StatusPaymentRequired
	case errors.Is(err, marketplace.ErrNotOwner),
		errors.Is(err, marketplace.ErrIsOwner),
		errors.Is(err, marketplace.ErrNotApprovedForMarketplace):
		return http.StatusForbidden
	case errors.Is(err, marketplace.ErrPriceMustBeAboveZero):
		return http.StatusBadRequest
	case errors.Is(err, marketplace.ErrNoProceeds):
		return http.StatusNotFound
	case errors.Is(err, marketplace.ErrReentrantCall):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func readJson(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJson(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJson(w, status, errorResponse{Error: err.Error()})
}
