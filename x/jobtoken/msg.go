package jobtoken

import (
	ledger "github.com/NevroHelios/skillsync-ledger"
	"github.com/NevroHelios/skillsync-ledger/errors"
)

const (
	pathIssueJobTokenMsg    = "jobtoken/issue"
	pathTransferJobTokenMsg = "jobtoken/transfer"
)

var _ ledger.Msg = (*IssueJobTokenMsg)(nil)

// Path returns the routing path for this message.
func (*IssueJobTokenMsg) Path() string {
	return pathIssueJobTokenMsg
}

// Validate makes sure the message is well formed. The posting details are
// stored verbatim, there is nothing to check on them.
func (m *IssueJobTokenMsg) Validate() error {
	return nil
}

var _ ledger.Msg = (*TransferJobTokenMsg)(nil)

// Path returns the routing path for this message.
func (*TransferJobTokenMsg) Path() string {
	return pathTransferJobTokenMsg
}

// Validate makes sure the message is well formed.
func (m *TransferJobTokenMsg) Validate() error {
	if m.TokenID < 1 {
		return errors.Wrap(errors.ErrInput, "token id")
	}
	if len(m.Recipient) == 0 {
		return errors.Wrap(errors.ErrEmpty, "recipient")
	}
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	return nil
}
