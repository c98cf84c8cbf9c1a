package x

import (
	ledger "github.com/NevroHelios/skillsync-ledger"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of handlers,
// so we can plug in another authentication system, rather than hard-coding
// one implementation for all extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled,
	// you may want the GetAddresses helper.
	GetConditions(ledger.Context) []ledger.Condition
	// HasAddress checks if any condition matches this address.
	HasAddress(ledger.Context, ledger.Address) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all Conditions from all Authenticators.
func (m MultiAuth) GetConditions(ctx ledger.Context) []ledger.Condition {
	var res []ledger.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any Authenticator supports this.
func (m MultiAuth) HasAddress(ctx ledger.Context, addr ledger.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator.
func GetAddresses(ctx ledger.Context, auth Authenticator) []ledger.Address {
	perms := auth.GetConditions(ctx)
	addrs := make([]ledger.Address, len(perms))
	for i, p := range perms {
		addrs[i] = p.Address()
	}
	return addrs
}

// MainSigner returns the first permission if any, otherwise nil.
func MainSigner(ctx ledger.Context, auth Authenticator) ledger.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx ledger.Context, auth Authenticator, required []ledger.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}
