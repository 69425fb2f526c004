package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_Defaults(t *testing.T) {
	cfg := Get()

	assert.Equal(t, "mainnet", cfg.Network)
	assert.Equal(t, "marketplace", cfg.Index)
	assert.Equal(t, "marketplace", cfg.Marketplace.Operator)
	assert.Equal(t, 30, cfg.Registry.Timeout)
	assert.Equal(t, "wait_for", cfg.ElasticSearch.Refresh)
	assert.Equal(t, 300, cfg.ElasticSearch.BulkPersistCount)
}

func TestGet_Environment(t *testing.T) {
	t.Setenv("NETWORK", "testnet")
	t.Setenv("MARKETPLACE_OPERATOR", "0xmarket")
	t.Setenv("REGISTRY_TIMEOUT", "5")
	t.Setenv("DEBUG", "true")
	t.Setenv("ELASTIC_SEARCH_HOSTS", "http://localhost:9200,http://localhost:9201")

	cfg := Get()

	assert.Equal(t, "testnet", cfg.Network)
	assert.Equal(t, "0xmarket", cfg.Marketplace.Operator)
	assert.Equal(t, 5, cfg.Registry.Timeout)
	assert.True(t, cfg.Debug)
	assert.Len(t, cfg.ElasticSearch.Hosts, 2)
}

func TestGet_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("REGISTRY_TIMEOUT", "soon")
	t.Setenv("DEBUG", "yep")

	cfg := Get()

	assert.Equal(t, 30, cfg.Registry.Timeout)
	assert.False(t, cfg.Debug)
}
