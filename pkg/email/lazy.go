package email

import (
	"context"
	"sync"
)

// SenderFactory builds a provider client from runtime configuration.
type SenderFactory func() (Sender, error)

// LazySender defers building the provider client until the first send, so a
// process can boot without email secrets. A successful build is memoized; a
// failed one is retried on the next call.
type LazySender struct {
	mu      sync.Mutex
	factory SenderFactory
	sender  Sender
}

func NewLazySender(factory SenderFactory) *LazySender {
	return &LazySender{factory: factory}
}

// Get returns the memoized client, building it if needed.
func (l *LazySender) Get() (Sender, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sender != nil {
		return l.sender, nil
	}
	s, err := l.factory()
	if err != nil {
		return nil, err
	}
	l.sender = s
	return s, nil
}

func (l *LazySender) Send(ctx context.Context, msg Message) error {
	s, err := l.Get()
	if err != nil {
		return err
	}
	return s.Send(ctx, msg)
}
