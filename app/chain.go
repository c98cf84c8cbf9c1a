package app

import (
	"reflect"

	ledger "github.com/NevroHelios/skillsync-ledger"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler.
type Decorators struct {
	chain []ledger.Decorator
}

// ChainDecorators takes a chain of decorators and, upon adding a final
// Handler (usually a Router), returns a Handler that will execute the whole
// stack:
//
//   app.ChainDecorators(
//     app.NewSavepoint().OnDeliver(),
//   ).WithHandler(
//     app.NewRouter(),
//   )
func ChainDecorators(chain ...ledger.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain appends more decorators to the chain.
func (d Decorators) Chain(chain ...ledger.Decorator) Decorators {
	return Decorators{chain: append(d.chain, cutoffNil(chain)...)}
}

// cutoffNil removes all nil values from the slice, in place.
func cutoffNil(ds []ledger.Decorator) []ledger.Decorator {
	var cutoff int
	for i := 0; i < len(ds); i++ {
		ds[i-cutoff] = ds[i]
		if ds[i] == nil || (reflect.ValueOf(ds[i]).Kind() == reflect.Ptr && reflect.ValueOf(ds[i]).IsNil()) {
			cutoff++
		}
	}
	return ds[:len(ds)-cutoff]
}

// WithHandler resolves the stack and returns a concrete Handler that will
// pass through the chain of decorators before calling the final Handler.
func (d Decorators) WithHandler(h ledger.Handler) ledger.Handler {
	// Wrap from the last decorator to the first one, as the top of the
	// chain executes first.
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one decorator executing around a specific Handler.
type step struct {
	d    ledger.Decorator
	next ledger.Handler
}

var _ ledger.Handler = step{}

func (s step) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

func (s step) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
