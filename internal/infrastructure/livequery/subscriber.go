package livequery

import (
	"context"
	"sync"

	"github.com/ReewajAdhikari/LearningTree/pkg/logger"
)

// Doc is one document from a watched collection: the document id plus the
// raw field bag. Typed records are built at the consumer via the entity
// *FromRecord constructors.
type Doc struct {
	ID   string
	Data map[string]interface{}
}

// Predicate is an equality filter on a named field. Multiple predicates
// are combined with AND.
type Predicate struct {
	Field string
	Value interface{}
}

// Handler receives the full current matching document set every time the
// backing store changes. On subscription failure it is called once with a
// nil set and the error; the consumer must treat its data as unknown, not
// stale.
type Handler func(docs []Doc, err error)

// Watcher is a standing filtered query against one collection. Next blocks
// until the matching set changes and returns the complete new set.
type Watcher interface {
	Next() ([]Doc, error)
	Stop()
}

// WatcherFactory opens watchers; the Firestore implementation lives in
// firestore.go and tests substitute their own.
type WatcherFactory interface {
	Watch(ctx context.Context, collection string, predicates []Predicate) Watcher
}

// Subscriber manages standing subscriptions keyed by consumer-chosen names.
// Subscribing again under the same key tears the previous subscription down
// first, so rebinding to a new identity never leaves two feeds active.
type Subscriber struct {
	factory WatcherFactory

	mu   sync.Mutex
	subs map[string]*Subscription
}

func NewSubscriber(factory WatcherFactory) *Subscriber {
	return &Subscriber{
		factory: factory,
		subs:    make(map[string]*Subscription),
	}
}

// Subscribe opens a standing subscription and delivers snapshots to the
// handler until the subscription is stopped. At most one subscription is
// active per key.
func (s *Subscriber) Subscribe(ctx context.Context, key, collection string, predicates []Predicate, handler Handler) *Subscription {
	s.mu.Lock()
	prev := s.subs[key]

	sub := &Subscription{
		key:     key,
		watcher: s.factory.Watch(ctx, collection, predicates),
		handler: handler,
		done:    make(chan struct{}),
	}
	sub.release = func() { s.release(key, sub) }
	s.subs[key] = sub
	s.mu.Unlock()

	// Stop outside the map lock; the previous subscription's release will
	// see the key rebound and leave the new entry alone.
	if prev != nil {
		prev.Stop()
	}

	go sub.run()

	return sub
}

// release drops the map entry for a finished subscription, unless the key
// has already been rebound to a newer one.
func (s *Subscriber) release(key string, sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs[key] == sub {
		delete(s.subs, key)
	}
}

// StopAll tears down every active subscription.
func (s *Subscriber) StopAll() {
	s.mu.Lock()
	subs := make([]*Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.subs = make(map[string]*Subscription)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Stop()
	}
}

// Subscription is the disposable handle for one live query. Stop prevents
// any further handler invocation, including for a snapshot already in
// flight when Stop was called.
type Subscription struct {
	key     string
	watcher Watcher
	handler Handler
	release func()

	mu       sync.Mutex
	stopped  bool
	done     chan struct{}
	doneOnce sync.Once
}

func (sub *Subscription) run() {
	defer sub.doneOnce.Do(func() { close(sub.done) })

	for {
		docs, err := sub.watcher.Next()

		// The liveness check and the delivery hold the same lock, so a
		// concurrent Stop either wins before delivery or waits for it.
		sub.mu.Lock()
		if sub.stopped {
			sub.mu.Unlock()
			return
		}
		sub.handler(docs, err)
		sub.mu.Unlock()

		if err != nil {
			logger.Warn("Live query %q ended: %v", sub.key, err)
			sub.Stop()
			return
		}
	}
}

// Stop tears the subscription down and releases its subscriber entry.
// After Stop returns, the handler will not be invoked again.
func (sub *Subscription) Stop() {
	sub.mu.Lock()
	if sub.stopped {
		sub.mu.Unlock()
		return
	}
	sub.stopped = true
	sub.mu.Unlock()

	sub.watcher.Stop()
	if sub.release != nil {
		sub.release()
	}
}

// Done is closed once the delivery loop has exited; tests use it to wait
// for shutdown.
func (sub *Subscription) Done() <-chan struct{} {
	return sub.done
}
