package store

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Table identifies one backend collection. Change notifications are
// scoped per table; consumers always re-fetch, so events carry no row
// payload.
type Table string

const (
	TableCategories  Table = "categories"
	TableCollections Table = "collections"
	TableProducts    Table = "products"
	TableClients     Table = "clients"
	TableOrders      Table = "orders"
	TableSettings    Table = "store_settings"
)

// Event signals that some row of Table changed (insert, update or
// delete — consumers cannot and need not tell which).
type Event struct {
	Table Table
}

// Notifier is the per-table change-notification stream. Every write
// through the CatalogStore publishes here, including the writer's own
// session, so mirrors converge across admin sessions and tabs.
type Notifier interface {
	Publish(ctx context.Context, table Table) error
	// Subscribe returns a channel of change events for one table and a
	// cancel func that releases the subscription.
	Subscribe(ctx context.Context, table Table) (<-chan Event, func(), error)
}

// ── Redis notifier ───────────────────────────────────────────────────

const channelPrefix = "store:changes:"

// RedisNotifier fans change events out over Redis pub/sub, one channel
// per table, so every running session observes every write.
type RedisNotifier struct {
	rdb *redis.Client
}

func NewRedisNotifier(rdb *redis.Client) *RedisNotifier {
	return &RedisNotifier{rdb: rdb}
}

func (n *RedisNotifier) Publish(ctx context.Context, table Table) error {
	return n.rdb.Publish(ctx, channelPrefix+string(table), string(table)).Err()
}

func (n *RedisNotifier) Subscribe(ctx context.Context, table Table) (<-chan Event, func(), error) {
	sub := n.rdb.Subscribe(ctx, channelPrefix+string(table))
	// Force the subscription to be established before we hand back the
	// channel, otherwise an immediate write could be missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	events := make(chan Event, 8)
	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			select {
			case events <- Event{Table: Table(msg.Payload)}:
			default:
				// Consumer is mid-refetch; it will re-fetch anyway when it
				// drains the pending event, so dropping here is safe.
				log.Printf("[store.notify] dropped event for table=%s", msg.Payload)
			}
		}
	}()

	cancel := func() { _ = sub.Close() }
	return events, cancel, nil
}

// ── In-process notifier ──────────────────────────────────────────────

// MemoryNotifier is an in-process hub with the same contract as the
// Redis notifier. Used in tests and single-process setups.
type MemoryNotifier struct {
	mu   sync.Mutex
	subs map[Table][]chan Event
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{subs: make(map[Table][]chan Event)}
}

func (n *MemoryNotifier) Publish(_ context.Context, table Table) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs[table] {
		select {
		case ch <- Event{Table: table}:
		default:
		}
	}
	return nil
}

func (n *MemoryNotifier) Subscribe(_ context.Context, table Table) (<-chan Event, func(), error) {
	ch := make(chan Event, 8)
	n.mu.Lock()
	n.subs[table] = append(n.subs[table], ch)
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		subs := n.subs[table]
		for i, c := range subs {
			if c == ch {
				n.subs[table] = append(subs[:i], subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel, nil
}
