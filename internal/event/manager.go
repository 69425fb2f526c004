package event

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu        sync.Mutex
	listeners = make([]*Listener, 0)
)

type Listener struct {
	eventType Type
	channel   chan interface{}
}

func AddEventListener(eventType Type, callback func(msg interface{})) {
	zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: AddListener")

	listener := Listener{
		eventType: eventType,
		channel:   make(chan interface{}, 16),
	}

	mu.Lock()
	listeners = append(listeners, &listener)
	mu.Unlock()

	go func() {
		for msg := range listener.channel {
			callback(msg)
		}
	}()
}

func EmitEvent(eventType Type, msg interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if len(listeners) == 0 {
		zap.L().Debug("No event listeners available")
	}
	for _, listener := range listeners {
		if listener.eventType == eventType {
			zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: Emitting event")
			go func(handler chan interface{}) {
				handler <- msg
			}(listener.channel)
		}
	}
}

// ResetListeners detaches all listeners. Intended for tests. The channels are
// left open; an emit still in flight lands in a dropped listener's buffer
// instead of panicking on a closed channel.
func ResetListeners() {
	mu.Lock()
	defer mu.Unlock()

	listeners = make([]*Listener, 0)
}
