package jobtoken

import (
	"fmt"

	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
	"github.com/NevroHelios/skillsync-ledger/orm"
	"github.com/NevroHelios/skillsync-ledger/x"
)

const (
	// Gas cost assigned during Check. Issuing writes a new model plus the
	// count, a transfer touches three records.
	issueJobTokenCost    int64 = 100
	transferJobTokenCost int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r ledger.Registry, auth x.Authenticator) {
	ctrl := NewController()
	r.Handle(&IssueJobTokenMsg{}, IssueHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferJobTokenMsg{}, TransferHandler{auth: auth, ctrl: ctrl})
}

// IssueHandler creates job posting tokens.
type IssueHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ ledger.Handler = IssueHandler{}

// Check validates the message and allocates gas.
func (h IssueHandler) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: issueJobTokenCost}, nil
}

// Deliver issues a new token owned by the main signer and returns its id in
// the result data.
func (h IssueHandler) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	creator := x.MainSigner(ctx, h.auth).Address()

	now, err := ledger.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.Issue(store, creator, ledger.AsUnixTime(now), msg.JobID, msg.Title, msg.Company, msg.Requirements)
	if err != nil {
		return nil, err
	}

	res := &ledger.DeliverResult{
		Data: orm.EncodeSequence(id),
		Tags: []ledger.Tag{
			ledger.Pair("action", "issue_jobtoken"),
			ledger.Pair("token_id", fmt.Sprintf("%d", id)),
			ledger.Pair("from", ledger.Address(nil).String()),
			ledger.Pair("to", creator.String()),
		},
	}
	return res, nil
}

func (h IssueHandler) validate(ctx ledger.Context, tx ledger.Tx) (*IssueJobTokenMsg, error) {
	var msg IssueJobTokenMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "no signer")
	}
	return &msg, nil
}

// TransferHandler moves job posting tokens between owners.
type TransferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ ledger.Handler = TransferHandler{}

// Check validates the message and allocates gas.
func (h TransferHandler) Check(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: transferJobTokenCost}, nil
}

// Deliver transfers the token to the recipient, provided the main signer is
// the current owner.
func (h TransferHandler) Deliver(ctx ledger.Context, store ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	caller := x.MainSigner(ctx, h.auth).Address()

	if err := h.ctrl.Move(store, caller, msg.TokenID, msg.Recipient); err != nil {
		return nil, err
	}

	res := &ledger.DeliverResult{
		Tags: []ledger.Tag{
			ledger.Pair("action", "transfer_jobtoken"),
			ledger.Pair("token_id", fmt.Sprintf("%d", msg.TokenID)),
			ledger.Pair("from", caller.String()),
			ledger.Pair("to", msg.Recipient.String()),
		},
	}
	return res, nil
}

func (h TransferHandler) validate(ctx ledger.Context, tx ledger.Tx) (*TransferJobTokenMsg, error) {
	var msg TransferJobTokenMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, nil
}
