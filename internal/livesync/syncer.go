package livesync

import (
	"context"
	"sync"

	"moviehub/pkg/logger"
)

// Doc is one document inside a delivered snapshot.
type Doc interface {
	ID() string
	DataTo(v interface{}) error
}

// Source is a live view of one remote collection. Snapshots blocks, calling
// deliver with the full current contents every time the collection changes,
// until ctx is canceled. Each delivery supersedes the previous one entirely.
type Source interface {
	Snapshots(ctx context.Context, deliver func(docs []Doc)) error
}

// Handler consumes one full snapshot. Invocations for a given path are
// sequential and in receipt order.
type Handler func(docs []Doc)

// Syncer owns the live subscriptions of a session. At most one subscription
// exists per path: opening a path again tears the previous one down first,
// and Close guarantees the handler never fires after it returns.
type Syncer struct {
	mu   sync.Mutex
	subs map[string]*subscription
}

func NewSyncer() *Syncer {
	return &Syncer{
		subs: make(map[string]*subscription),
	}
}

type subscription struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

func (s *Syncer) Open(ctx context.Context, path string, src Source, h Handler) {
	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	// Lookup and replace happen in one critical section so concurrent Opens
	// on the same path cannot both go live untracked.
	s.mu.Lock()
	prev := s.subs[path]
	s.subs[path] = sub
	s.mu.Unlock()

	if prev != nil {
		prev.close()
	}

	go func() {
		defer close(sub.done)

		err := src.Snapshots(subCtx, func(docs []Doc) {
			sub.mu.Lock()
			defer sub.mu.Unlock()
			if sub.closed || subCtx.Err() != nil {
				return
			}
			h(docs)
		})
		if err != nil && subCtx.Err() == nil {
			// Reported once; consumers keep their last-known snapshot.
			logger.Error("live subscription %s failed: %v", path, err)
		}
	}()
}

func (s *Syncer) Close(path string) {
	s.mu.Lock()
	sub := s.subs[path]
	delete(s.subs, path)
	s.mu.Unlock()

	if sub != nil {
		sub.close()
	}
}

func (s *Syncer) CloseAll() {
	s.mu.Lock()
	subs := make([]*subscription, 0, len(s.subs))
	for path, sub := range s.subs {
		subs = append(subs, sub)
		delete(s.subs, path)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

func (sub *subscription) close() {
	sub.mu.Lock()
	sub.closed = true
	sub.mu.Unlock()

	sub.cancel()
	<-sub.done
}
