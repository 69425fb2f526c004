package registry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rpcServer(t *testing.T, owner string, transferErr *RPCError, calls map[string]int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		calls[req.Method]++

		resp := rpcResponse{Id: req.Id}
		switch req.Method {
		case "registry_ownerOf", "registry_getApproved":
			result, _ := json.Marshal(owner)
			resp.Result = result
		case "registry_transfer":
			if transferErr != nil {
				resp.Error = transferErr
			} else {
				resp.Result = json.RawMessage(`true`)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestRpcRegistry_OwnerOf(t *testing.T) {
	calls := make(map[string]int)
	server := rpcServer(t, "alice", nil, calls)
	defer server.Close()

	reg, err := NewRpcRegistry(server.URL, 5, 60, false)
	require.NoError(t, err)

	owner, err := reg.OwnerOf("0xduckpond", 5)
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)
}

func TestRpcRegistry_OwnershipReadsAreCached(t *testing.T) {
	calls := make(map[string]int)
	server := rpcServer(t, "alice", nil, calls)
	defer server.Close()

	reg, err := NewRpcRegistry(server.URL, 5, 60, false)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := reg.OwnerOf("0xduckpond", 5)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, calls["registry_ownerOf"])
}

func TestRpcRegistry_TransferInvalidatesCache(t *testing.T) {
	calls := make(map[string]int)
	server := rpcServer(t, "alice", nil, calls)
	defer server.Close()

	reg, err := NewRpcRegistry(server.URL, 5, 60, false)
	require.NoError(t, err)

	_, err = reg.OwnerOf("0xduckpond", 5)
	require.NoError(t, err)

	require.NoError(t, reg.Transfer("0xduckpond", 5, "alice", "bob"))

	_, err = reg.OwnerOf("0xduckpond", 5)
	require.NoError(t, err)

	assert.Equal(t, 2, calls["registry_ownerOf"])
}

func TestRpcRegistry_TransferError(t *testing.T) {
	calls := make(map[string]int)
	server := rpcServer(t, "alice", &RPCError{Code: -32000, Message: "not approved"}, calls)
	defer server.Close()

	reg, err := NewRpcRegistry(server.URL, 5, 60, false)
	require.NoError(t, err)

	err = reg.Transfer("0xduckpond", 5, "alice", "bob")
	require.Error(t, err)

	var rpcErr RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, RPCErrorCode(-32000), rpcErr.Code)
}

func TestRpcRegistry_RequiresUrl(t *testing.T) {
	_, err := NewRpcRegistry("", 5, 60, false)
	require.Error(t, err)
}
