package hiretoken

import (
	"fmt"

	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/orm"
	"github.com/NevroHelios/skillsync-ledger/x"
)

const mintHireTokenCost int64 = 100

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r ledger.Registry, auth x.Authenticator) {
	r.Handle(&MintHireTokenMsg{}, MintHandler{auth: auth, ctrl: NewController()})
}

// MintHandler records hires.
type MintHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ ledger.Handler = MintHandler{}

// Check validates the message and allocates gas.
func (h MintHandler) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	var msg MintHireTokenMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: mintHireTokenCost}, nil
}

// Deliver mints a hire token and returns its id in the result data.
func (h MintHandler) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	var msg MintHireTokenMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}

	id, err := h.ctrl.Mint(store, msg.Developer, msg.JobID, msg.Company, msg.Title, msg.URI)
	if err != nil {
		return nil, err
	}

	res := &ledger.DeliverResult{
		Data: orm.EncodeSequence(id),
		Tags: []ledger.Tag{
			ledger.Pair("action", "hire_minted"),
			ledger.Pair("token_id", fmt.Sprintf("%d", id)),
			ledger.Pair("to", msg.Developer.String()),
		},
	}
	return res, nil
}
