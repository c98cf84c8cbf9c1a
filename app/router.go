package app

import (
	"fmt"
	"regexp"

	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
)

// isPath is the RegExp to ensure the routes are valid.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/\-]+$`).MatchString

// Router maps message paths to handlers.
type Router struct {
	routes map[string]ledger.Handler
}

var _ ledger.Registry = (*Router)(nil)
var _ ledger.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]ledger.Handler),
	}
}

// Handle implements the Registry interface. It panics on an invalid path or
// when a handler was already registered for it, as both are configuration
// errors that must never ship.
func (r *Router) Handle(m ledger.Msg, h ledger.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("double registration of path: %q", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this message, or an error if
// the message cannot be routed.
func (r *Router) handler(tx ledger.Tx) (ledger.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrState, "transaction without a message")
	}
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", msg.Path())
	}
	return h, nil
}

// Check dispatches the transaction to the handler registered for its
// message path.
func (r *Router) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, store, tx)
}

// Deliver dispatches the transaction to the handler registered for its
// message path.
func (r *Router) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, store, tx)
}
