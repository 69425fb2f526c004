package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NftDex/marketplace-ledger/internal/entity"
	"github.com/NftDex/marketplace-ledger/internal/marketplace"
	"github.com/NftDex/marketplace-ledger/internal/payment"
	"github.com/NftDex/marketplace-ledger/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const operator = "marketplace"

type stubListingRepo struct {
	listings []entity.Listing
}

func (r stubListingRepo) GetListing(contract string, tokenId uint64) (entity.Listing, error) {
	return entity.Listing{}, nil
}

func (r stubListingRepo) GetActiveBySeller(seller string) ([]entity.Listing, error) {
	return r.listings, nil
}

func (r stubListingRepo) GetActiveByContract(contract string) ([]entity.Listing, error) {
	return r.listings, nil
}

type stubActionRepo struct {
	actions []entity.MarketplaceAction
}

func (r stubActionRepo) GetActions(contract string, tokenId uint64) ([]entity.MarketplaceAction, error) {
	return r.actions, nil
}

func (r stubActionRepo) GetActionsByAccount(account string) ([]entity.MarketplaceAction, error) {
	return r.actions, nil
}

func setup(t *testing.T) (Server, *registry.MemoryRegistry) {
	t.Helper()

	reg := registry.NewMemoryRegistry()
	ledger := marketplace.NewLedger(reg, payment.NewMemoryBank(), operator)

	return NewServer(ledger, stubListingRepo{}, stubActionRepo{}), reg
}

func listed(t *testing.T, server Server, reg *registry.MemoryRegistry) {
	t.Helper()

	require.NoError(t, reg.Mint("0xduckpond", 5, "alice"))
	require.NoError(t, reg.Approve("0xduckpond", 5, operator, "alice"))

	res := do(server, "POST", "/listing", "alice", listingRequest{Contract: "0xduckpond", TokenId: 5, Price: "100"})
	require.Equal(t, http.StatusCreated, res.Code)
}

func do(server Server, method, path, account string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	if account != "" {
		req.Header.Set(accountHeader, account)
	}

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	server, _ := setup(t)

	res := do(server, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestCreateAndGetListing(t *testing.T) {
	server, reg := setup(t)
	listed(t, server, reg)

	res := do(server, "GET", "/listing/0xduckpond/5", "", nil)
	require.Equal(t, http.StatusOK, res.Code)

	var body listingResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "100", body.Price)
	assert.Equal(t, "alice", body.Seller)
}

func TestCreateListing_RequiresAccount(t *testing.T) {
	server, _ := setup(t)

	res := do(server, "POST", "/listing", "", listingRequest{Contract: "0xduckpond", TokenId: 5, Price: "100"})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestCreateListing_Conflict(t *testing.T) {
	server, reg := setup(t)
	listed(t, server, reg)

	res := do(server, "POST", "/listing", "alice", listingRequest{Contract: "0xduckpond", TokenId: 5, Price: "200"})
	assert.Equal(t, http.StatusConflict, res.Code)
}

func TestCreateListing_NotOwner(t *testing.T) {
	server, reg := setup(t)
	require.NoError(t, reg.Mint("0xduckpond", 5, "alice"))
	require.NoError(t, reg.Approve("0xduckpond", 5, operator, "alice"))

	res := do(server, "POST", "/listing", "mallory", listingRequest{Contract: "0xduckpond", TokenId: 5, Price: "100"})
	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestUpdateListing(t *testing.T) {
	server, reg := setup(t)
	listed(t, server, reg)

	res := do(server, "PUT", "/listing", "alice", listingRequest{Contract: "0xduckpond", TokenId: 5, Price: "250"})
	require.Equal(t, http.StatusOK, res.Code)

	res = do(server, "GET", "/listing/0xduckpond/5", "", nil)
	var body listingResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "250", body.Price)
}

func TestCancelListing(t *testing.T) {
	server, reg := setup(t)
	listed(t, server, reg)

	res := do(server, "DELETE", "/listing/0xduckpond/5", "alice", nil)
	require.Equal(t, http.StatusOK, res.Code)

	res = do(server, "GET", "/listing/0xduckpond/5", "", nil)
	var body listingResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "0", body.Price)
}

func TestPurchaseAndWithdraw(t *testing.T) {
	server, reg := setup(t)
	listed(t, server, reg)

	res := do(server, "POST", "/purchase", "bob", purchaseRequest{Contract: "0xduckpond", TokenId: 5, Payment: "100"})
	require.Equal(t, http.StatusOK, res.Code)

	res = do(server, "GET", "/proceeds/alice", "", nil)
	var proceeds proceedsResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &proceeds))
	assert.Equal(t, "100", proceeds.Proceeds)

	res = do(server, "POST", "/withdraw", "alice", nil)
	require.Equal(t, http.StatusOK, res.Code)

	res = do(server, "POST", "/withdraw", "alice", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestPurchase_PriceNotMet(t *testing.T) {
	server, reg := setup(t)
	listed(t, server, reg)

	res := do(server, "POST", "/purchase", "bob", purchaseRequest{Contract: "0xduckpond", TokenId: 5, Payment: "99"})
	assert.Equal(t, http.StatusPaymentRequired, res.Code)
}

func TestPurchase_UnknownListing(t *testing.T) {
	server, reg := setup(t)
	require.NoError(t, reg.Mint("0xduckpond", 9, "alice"))

	res := do(server, "POST", "/purchase", "bob", purchaseRequest{Contract: "0xduckpond", TokenId: 9, Payment: "100"})
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestPurchase_BadAmount(t *testing.T) {
	server, reg := setup(t)
	listed(t, server, reg)

	res := do(server, "POST", "/purchase", "bob", purchaseRequest{Contract: "0xduckpond", TokenId: 5, Payment: "not-a-number"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
}
