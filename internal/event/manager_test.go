package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitEvent(t *testing.T) {
	ResetListeners()
	defer ResetListeners()

	received := make(chan interface{}, 1)
	AddEventListener(ItemPurchasedEvent, func(msg interface{}) {
		received <- msg
	})

	EmitEvent(ItemPurchasedEvent, ItemPurchased{Buyer: "bob", Contract: "0xduckpond", TokenId: 5, Price: "100"})

	select {
	case msg := <-received:
		purchased, ok := msg.(ItemPurchased)
		require.True(t, ok)
		assert.Equal(t, "bob", purchased.Buyer)
		assert.Equal(t, uint64(5), purchased.TokenId)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestResetListeners_SafeDuringEmit(t *testing.T) {
	ResetListeners()
	defer ResetListeners()

	for i := 0; i < 50; i++ {
		AddEventListener(ListingCreatedEvent, func(msg interface{}) {})
		EmitEvent(ListingCreatedEvent, ListingCreated{Seller: "alice"})
		ResetListeners()
	}
}

func TestEmitEvent_TypeFiltered(t *testing.T) {
	ResetListeners()
	defer ResetListeners()

	received := make(chan interface{}, 1)
	AddEventListener(ListingCanceledEvent, func(msg interface{}) {
		received <- msg
	})

	EmitEvent(ListingCreatedEvent, ListingCreated{Seller: "alice"})

	select {
	case <-received:
		t.Fatal("listener received an event of another type")
	case <-time.After(100 * time.Millisecond):
	}
}
