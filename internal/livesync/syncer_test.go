package livesync_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviehub/internal/livesync"
)

type fakeDoc struct {
	id   string
	data interface{}
}

func (d fakeDoc) ID() string { return d.id }

func (d fakeDoc) DataTo(v interface{}) error {
	b, err := json.Marshal(d.data)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

type fakeSource struct {
	deliveries chan []livesync.Doc
	err        error
}

func newFakeSource() *fakeSource {
	return &fakeSource{deliveries: make(chan []livesync.Doc, 16)}
}

func (s *fakeSource) Snapshots(ctx context.Context, deliver func(docs []livesync.Doc)) error {
	for {
		select {
		case docs, ok := <-s.deliveries:
			if !ok {
				return s.err
			}
			deliver(docs)
		case <-ctx.Done():
			return nil
		}
	}
}

func snapshot(ids ...string) []livesync.Doc {
	docs := make([]livesync.Doc, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, fakeDoc{id: id})
	}
	return docs
}

func receive(t *testing.T, ch <-chan []string) []string {
	t.Helper()
	select {
	case got := <-ch:
		return got
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot delivery")
		return nil
	}
}

func collectIDs(docs []livesync.Doc) []string {
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID()
	}
	return ids
}

func TestSyncerDeliversInReceiptOrder(t *testing.T) {
	syncer := livesync.NewSyncer()
	defer syncer.CloseAll()

	src := newFakeSource()
	got := make(chan []string, 16)
	syncer.Open(context.Background(), "users/u1/ratings", src, func(docs []livesync.Doc) {
		got <- collectIDs(docs)
	})

	src.deliveries <- snapshot("a")
	src.deliveries <- snapshot("a", "b")
	src.deliveries <- snapshot("b")

	assert.Equal(t, []string{"a"}, receive(t, got))
	assert.Equal(t, []string{"a", "b"}, receive(t, got))
	assert.Equal(t, []string{"b"}, receive(t, got))
}

func TestSyncerSingleOwnerPerPath(t *testing.T) {
	syncer := livesync.NewSyncer()
	defer syncer.CloseAll()

	first := newFakeSource()
	firstGot := make(chan []string, 16)
	syncer.Open(context.Background(), "users/u1/reviews", first, func(docs []livesync.Doc) {
		firstGot <- collectIDs(docs)
	})

	first.deliveries <- snapshot("r1")
	assert.Equal(t, []string{"r1"}, receive(t, firstGot))

	// Reopening the same path tears the first subscription down.
	second := newFakeSource()
	secondGot := make(chan []string, 16)
	syncer.Open(context.Background(), "users/u1/reviews", second, func(docs []livesync.Doc) {
		secondGot <- collectIDs(docs)
	})

	first.deliveries <- snapshot("stale")
	second.deliveries <- snapshot("r2")

	assert.Equal(t, []string{"r2"}, receive(t, secondGot))
	select {
	case ids := <-firstGot:
		t.Fatalf("torn-down subscription delivered %v", ids)
	default:
	}
}

func TestSyncerNoDeliveryAfterClose(t *testing.T) {
	syncer := livesync.NewSyncer()

	src := newFakeSource()
	got := make(chan []string, 16)
	syncer.Open(context.Background(), "users/u1/watchlist", src, func(docs []livesync.Doc) {
		got <- collectIDs(docs)
	})

	src.deliveries <- snapshot("w1")
	assert.Equal(t, []string{"w1"}, receive(t, got))

	syncer.Close("users/u1/watchlist")

	// A remote change arriving after teardown must not reach the handler.
	src.deliveries <- snapshot("w2")
	select {
	case ids := <-got:
		t.Fatalf("closed subscription delivered %v", ids)
	case <-time.After(100 * time.Millisecond):
	}

	// Closing again is a no-op.
	syncer.Close("users/u1/watchlist")
}

func TestSyncerKeepsLastSnapshotOnStreamFailure(t *testing.T) {
	syncer := livesync.NewSyncer()
	defer syncer.CloseAll()

	src := newFakeSource()
	src.err = errors.New("stream broken")
	got := make(chan []string, 16)
	syncer.Open(context.Background(), "users/u1/ratings", src, func(docs []livesync.Doc) {
		got <- collectIDs(docs)
	})

	src.deliveries <- snapshot("a")
	assert.Equal(t, []string{"a"}, receive(t, got))

	// The stream dies; the last delivery stands and nothing panics.
	close(src.deliveries)

	select {
	case ids := <-got:
		t.Fatalf("failed stream delivered %v", ids)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFakeDocDataTo(t *testing.T) {
	doc := fakeDoc{id: "d1", data: map[string]string{"title": "Alien"}}

	var out map[string]string
	require.NoError(t, doc.DataTo(&out))
	assert.Equal(t, "Alien", out["title"])
}

type parkedSource struct {
	stopped chan<- string
	name    string
}

func (s parkedSource) Snapshots(ctx context.Context, deliver func(docs []livesync.Doc)) error {
	<-ctx.Done()
	s.stopped <- s.name
	return nil
}

func TestSyncerConcurrentOpensLeaveSingleOwner(t *testing.T) {
	syncer := livesync.NewSyncer()
	const racers = 8

	stopped := make(chan string, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		name := strconv.Itoa(i)
		go func() {
			defer wg.Done()
			src := parkedSource{stopped: stopped, name: name}
			syncer.Open(context.Background(), "users/u1/ratings", src, func(docs []livesync.Doc) {})
		}()
	}
	wg.Wait()

	// Every displaced subscription was released on replacement; closing the
	// path releases the single survivor. Nothing may leak past that.
	syncer.Close("users/u1/ratings")

	seen := make(map[string]bool)
	for i := 0; i < racers; i++ {
		select {
		case name := <-stopped:
			assert.False(t, seen[name], "subscription %s stopped twice", name)
			seen[name] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d of %d subscriptions released", i, racers)
		}
	}
}
