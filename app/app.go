package app

import (
	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
	"github.com/NevroHelios/skillsync-ledger/x"
	"github.com/NevroHelios/skillsync-ledger/x/hiretoken"
	"github.com/NevroHelios/skillsync-ledger/x/jobtoken"
)

// TokenApp ties the job posting and hire registries to one backing store
// and processes one transaction at a time.
type TokenApp struct {
	store   ledger.CacheableKVStore
	handler ledger.Handler
}

// NewTokenApp wires both registries into a router behind a deliver
// savepoint. The authenticator decides who signed a given transaction.
func NewTokenApp(db ledger.CacheableKVStore, auth x.Authenticator) *TokenApp {
	r := NewRouter()
	jobtoken.RegisterRoutes(r, auth)
	hiretoken.RegisterRoutes(r, auth)

	h := ChainDecorators(
		NewSavepoint().OnDeliver(),
	).WithHandler(r)

	return &TokenApp{store: db, handler: h}
}

// InitFromGenesis seeds the registries from the genesis options.
func (a *TokenApp) InitFromGenesis(opts ledger.Options) error {
	inits := []ledger.Initializer{
		&jobtoken.Initializer{},
	}
	for _, i := range inits {
		if err := i.FromGenesis(opts, a.store); err != nil {
			return errors.Wrap(err, "init from genesis")
		}
	}
	return nil
}

// CheckTx validates the transaction against a throwaway cache. No check
// ever persists state.
func (a *TokenApp) CheckTx(ctx ledger.Context, tx ledger.Tx) (*ledger.CheckResult, error) {
	cache := a.store.CacheWrap()
	defer cache.Discard()
	return a.handler.Check(ctx, cache, tx)
}

// DeliverTx executes the transaction. Writes reach the backing store only
// when the whole operation succeeded.
func (a *TokenApp) DeliverTx(ctx ledger.Context, tx ledger.Tx) (*ledger.DeliverResult, error) {
	return a.handler.Deliver(ctx, a.store, tx)
}

// Store grants read access to the application state, for queries.
func (a *TokenApp) Store() ledger.ReadOnlyKVStore {
	return a.store
}
