package ledgertest

import (
	"context"

	ledger "github.com/NevroHelios/skillsync-ledger"
)

// Auth is a mock of the x.Authenticator interface.
type Auth struct {
	// Signer is returned by GetConditions. This is a convenience attribute
	// for when a single signer is needed.
	Signer ledger.Condition

	// Signers are returned by GetConditions when more than one signer is
	// needed. When set, Signer is ignored.
	Signers []ledger.Condition
}

func (a *Auth) GetConditions(ledger.Context) []ledger.Condition {
	if len(a.Signers) > 0 {
		return a.Signers
	}
	if a.Signer != nil {
		return []ledger.Condition{a.Signer}
	}
	return nil
}

func (a *Auth) HasAddress(ctx ledger.Context, addr ledger.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is an x.Authenticator implementation that reads conditions from
// the context. Use the same key for SetConditions and the queries.
type CtxAuth struct {
	Key interface{}
}

// SetConditions returns a context with the given conditions attached.
func (a *CtxAuth) SetConditions(ctx ledger.Context, conds ...ledger.Condition) ledger.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx ledger.Context) []ledger.Condition {
	conds, ok := ctx.Value(a.Key).([]ledger.Condition)
	if !ok {
		return nil
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx ledger.Context, addr ledger.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
