package app

import (
	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
)

// Savepoint isolates all writes inside of the call and commits or discards
// them based on whether the wrapped handler returned an error. This is what
// makes every operation all or nothing: a handler that fails halfway leaves
// no partial writes behind.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ ledger.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator. Call OnCheck or OnDeliver to
// select when it triggers.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that triggers on Check.
func (s Savepoint) OnCheck() Savepoint {
	return Savepoint{onCheck: true, onDeliver: s.onDeliver}
}

// OnDeliver returns a savepoint that triggers on Deliver.
func (s Savepoint) OnDeliver() Savepoint {
	return Savepoint{onCheck: s.onCheck, onDeliver: true}
}

// Check will optionally run the next checker against a cache wrap.
func (s Savepoint) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx, next ledger.Checker) (*ledger.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	cstore, ok := store.(ledger.CacheableKVStore)
	if !ok {
		return next.Check(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

// Deliver will optionally run the next deliverer against a cache wrap.
func (s Savepoint) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx, next ledger.Deliverer) (*ledger.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	cstore, ok := store.(ledger.CacheableKVStore)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}
