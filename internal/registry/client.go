package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const jsonrpcVersion = "2.0"

// rpcRegistry talks to a remote asset registry over JSON RPC. Ownership and
// approval reads are cached briefly; Transfer always goes to the wire.
type rpcRegistry struct {
	url        string
	httpClient *retryablehttp.Client
	cache      *cache.Cache
	timeout    int
	debug      bool
}

type rpcRequest struct {
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	Id      int64       `json:"id"`
	JsonRpc string      `json:"jsonrpc"`
}

type RPCErrorCode int

type RPCError struct {
	Code    RPCErrorCode `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
}

var _, _ error = RPCError{}, (*RPCError)(nil)

func (e RPCError) Error() string {
	return fmt.Sprintf("%d:%s", e.Code, e.Message)
}

type rpcResponse struct {
	Id     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

func NewRpcRegistry(url string, timeout int, cacheTtl int, debug bool) (Registry, error) {
	if len(url) == 0 {
		return nil, errors.New("bad call missing argument host")
	}

	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 3

	ttl := time.Duration(cacheTtl) * time.Second

	return &rpcRegistry{
		url:        url,
		httpClient: retryClient,
		cache:      cache.New(ttl, 2*ttl),
		timeout:    timeout,
		debug:      debug,
	}, nil
}

func (r *rpcRegistry) OwnerOf(contract string, tokenId uint64) (string, error) {
	return r.cachedAccountCall("registry_ownerOf", contract, tokenId)
}

func (r *rpcRegistry) GetApproved(contract string, tokenId uint64) (string, error) {
	return r.cachedAccountCall("registry_getApproved", contract, tokenId)
}

func (r *rpcRegistry) Transfer(contract string, tokenId uint64, from, to string) error {
	resp, err := r.call("registry_transfer", map[string]interface{}{
		"contract": contract,
		"tokenId":  tokenId,
		"from":     from,
		"to":       to,
	})
	if err != nil {
		return err
	}
	if resp.Error != nil {
		return *resp.Error
	}

	r.cache.Delete(cacheKey("registry_ownerOf", contract, tokenId))
	r.cache.Delete(cacheKey("registry_getApproved", contract, tokenId))

	return nil
}

func (r *rpcRegistry) cachedAccountCall(method, contract string, tokenId uint64) (string, error) {
	key := cacheKey(method, contract, tokenId)
	if cached, found := r.cache.Get(key); found {
		return cached.(string), nil
	}

	resp, err := r.call(method, map[string]interface{}{
		"contract": contract,
		"tokenId":  tokenId,
	})
	if err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", *resp.Error
	}

	var account string
	if err := json.Unmarshal(resp.Result, &account); err != nil {
		return "", err
	}

	r.cache.Set(key, account, cache.DefaultExpiration)

	return account, nil
}

func cacheKey(method, contract string, tokenId uint64) string {
	return fmt.Sprintf("%s-%s-%d", method, contract, tokenId)
}

func (r *rpcRegistry) call(method string, params interface{}) (rr *rpcResponse, err error) {
	rpcR := rpcRequest{method, params, time.Now().UnixNano(), jsonrpcVersion}
	payloadBuffer := &bytes.Buffer{}
	jsonEncoder := json.NewEncoder(payloadBuffer)
	err = jsonEncoder.Encode(rpcR)
	if err != nil {
		return
	}

	zap.L().With(zap.String("request", rpcR.Method)).Debug("Registry: RPC Request")
	if r.debug {
		zap.L().With(zap.String("request", payloadBuffer.String())).Debug("Registry: RPC Request")
	}

	req, err := retryablehttp.NewRequest("POST", r.url, payloadBuffer)
	if err != nil {
		return
	}

	req.Header.Add("Content-Type", "application/json;charset=utf-8")
	req.Header.Add("Accept", "application/json")

	resp, err := r.doTimeoutRequest(time.NewTimer(time.Duration(r.timeout)*time.Second), req)
	if err != nil {
		zap.L().With(zap.Error(err)).Warn("Registry: RPC Failure")
		return
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return
	}

	if r.debug {
		zap.L().With(zap.String("response", string(data))).Debug("Registry: RPC Response")
	}

	err = json.Unmarshal(data, &rr)
	return
}

func (r *rpcRegistry) doTimeoutRequest(timer *time.Timer, req *retryablehttp.Request) (*http.Response, error) {
	type result struct {
		resp *http.Response
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := r.httpClient.Do(req)
		done <- result{resp, err}
	}()

	select {
	case res := <-done:
		return res.resp, res.err
	case <-timer.C:
		return nil, errors.New("timeout reading data from server")
	}
}
