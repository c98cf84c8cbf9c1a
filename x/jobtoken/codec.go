package jobtoken

import (
	amino "github.com/tendermint/go-amino"

	ledger "github.com/NevroHelios/skillsync-ledger"
)

// cdc is the wire codec shared by all models and messages of this package.
var cdc = amino.NewCodec()

// JobToken is the state of a single job posting token. The Owner changes
// with every transfer, every other field is written once when the token is
// issued and never modified.
type JobToken struct {
	Owner        ledger.Address
	JobID        string
	Title        string
	Company      string
	Requirements string
	Creator      ledger.Address
	CreatedAt    ledger.UnixTime
}

func (t *JobToken) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(t)
}

func (t *JobToken) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, t)
}

// TokenCount keeps the number of tokens currently owned by a single address.
// It is derived data, maintained incrementally on every issue and transfer.
type TokenCount struct {
	Count int64
}

func (c *TokenCount) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

func (c *TokenCount) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

// IssueJobTokenMsg creates a new job posting token, owned by the caller.
type IssueJobTokenMsg struct {
	JobID        string
	Title        string
	Company      string
	Requirements string
}

func (m *IssueJobTokenMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *IssueJobTokenMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// TransferJobTokenMsg moves an existing token to a new owner. Only the
// current owner is authorized to do this.
type TransferJobTokenMsg struct {
	TokenID   int64
	Recipient ledger.Address
}

func (m *TransferJobTokenMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *TransferJobTokenMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}
